// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

/*
Package base is the numeric foundation shared by every chapter package in
this module.

It carries forward the pieces every other package still calls: Horner
polynomial evaluation, PMod angle reduction, J2000Century, and the
floor-division helpers used by calendar arithmetic. Angle/RA/HourAngle
value types and sexagesimal parsing are not reproduced here — this module
uses github.com/soniakeys/unit directly where a typed angle is useful, and
has no use for planetary phase.
*/
package base

// Package compensation maps a combined disability rating, the veteran's
// dependents, and a rate year to an estimated monthly compensation amount.
//
// Rate schedules are injected as an immutable RateTable so that tests and
// deployments can substitute their own data. All money arithmetic is
// fixed-point decimal rounded to whole cents.
package compensation

// Package domain contains the value objects shared by the VA rating engines:
// individual disability ratings, SMC conditions with structured body-part
// tags, the SMC level enumeration, and the result types each engine returns.
//
// Every value is validated once at construction. Engine code downstream of
// the constructors assumes valid input and performs no further checks.
package domain

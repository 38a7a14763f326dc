// Package tdiu determines Total Disability Individual Unemployability
// eligibility from a veteran's individual ratings and combined rating.
package tdiu

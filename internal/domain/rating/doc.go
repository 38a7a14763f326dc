// Package rating implements the VA "whole person" combined rating calculation
// (38 CFR 4.25) together with the bilateral factor (38 CFR 4.26).
//
// Each rating is applied only to the percentage of the person that remains
// healthy after the ratings already applied, so two 50% ratings combine to
// 75%, not 100%. All arithmetic is exact decimal; the only rounding performed
// is the final half-up conversion to a multiple of 10.
package rating

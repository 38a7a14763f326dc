package compensation

import "github.com/shopspring/decimal"

// DefaultRateTable returns the built-in published schedules (veteran-alone
// basic rates effective each December 1 for the following rate year).
//
// 2022 and 2023 ship without dependent tables and run base-rate only.
// Every call returns a fresh table.
func DefaultRateTable() *RateTable {
	table, err := NewRateTable(DefaultYearRates())
	if err != nil {
		// The built-in data is static and covered by tests.
		panic("compensation: invalid built-in rate data: " + err.Error())
	}
	return table
}

// DefaultYearRates returns a fresh copy of the built-in schedule data, for
// callers that want to extend or override individual years.
func DefaultYearRates() map[int]YearRates {
	return map[int]YearRates{
		2022: {
			Base: amounts(map[int]string{
				0: "0.00", 10: "152.64", 20: "301.74", 30: "467.39", 40: "673.28",
				50: "958.44", 60: "1214.03", 70: "1529.95", 80: "1778.43", 90: "1998.52", 100: "3332.06",
			}),
		},
		2023: {
			Base: amounts(map[int]string{
				0: "0.00", 10: "165.92", 20: "327.99", 30: "508.05", 40: "731.86",
				50: "1041.82", 60: "1319.65", 70: "1663.06", 80: "1933.15", 90: "2172.39", 100: "3621.95",
			}),
		},
		2024: {
			Base: amounts(map[int]string{
				0: "0.00", 10: "171.23", 20: "338.49", 30: "524.31", 40: "755.28",
				50: "1075.16", 60: "1361.88", 70: "1716.28", 80: "1995.01", 90: "2241.91", 100: "3737.85",
			}),
			Dependents: &DependentRates{
				Spouse: amounts(map[int]string{
					30: "62.00", 40: "83.00", 50: "104.00", 60: "125.00",
					70: "146.00", 80: "166.00", 90: "187.00", 100: "208.40",
				}),
				Child: amounts(map[int]string{
					30: "31.00", 40: "41.00", 50: "52.00", 60: "62.00",
					70: "72.00", 80: "83.00", 90: "93.00", 100: "104.20",
				}),
				Parent: amounts(map[int]string{
					30: "50.00", 40: "66.00", 50: "83.00", 60: "99.00",
					70: "116.00", 80: "133.00", 90: "149.00", 100: "166.08",
				}),
			},
		},
		2025: {
			Base: amounts(map[int]string{
				0: "0.00", 10: "175.51", 20: "346.95", 30: "537.42", 40: "774.16",
				50: "1102.04", 60: "1395.93", 70: "1759.19", 80: "2044.89", 90: "2297.96", 100: "3831.30",
			}),
			Dependents: &DependentRates{
				Spouse: amounts(map[int]string{
					30: "64.00", 40: "85.00", 50: "107.00", 60: "128.00",
					70: "150.00", 80: "171.00", 90: "192.00", 100: "213.61",
				}),
				Child: amounts(map[int]string{
					30: "32.00", 40: "43.00", 50: "53.00", 60: "64.00",
					70: "75.00", 80: "85.00", 90: "96.00", 100: "106.81",
				}),
				Parent: amounts(map[int]string{
					30: "51.00", 40: "68.00", 50: "85.00", 60: "102.00",
					70: "119.00", 80: "136.00", 90: "153.00", 100: "170.24",
				}),
			},
		},
	}
}

func amounts(in map[int]string) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(in))
	for tier, s := range in {
		out[tier] = decimal.RequireFromString(s)
	}
	return out
}

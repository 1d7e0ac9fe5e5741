package salaries

import "strconv"

// NetSalary computes basic + allowances - deductions from the raw form
// values. Any unparseable amount makes the whole result 0.0 instead of an
// error; callers that want strict validation must parse beforehand.
func NetSalary(basic, allowances, deductions string) float64 {
	b, errB := strconv.ParseFloat(basic, 64)
	a, errA := strconv.ParseFloat(allowances, 64)
	d, errD := strconv.ParseFloat(deductions, 64)
	if errB != nil || errA != nil || errD != nil {
		return 0.0
	}
	return b + a - d
}

// Amount parses a single monetary field, falling back to 0 on bad input.
func Amount(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// AnnualBasic derives the yearly figure shown next to a monthly basic
// salary. Display-only, never stored.
func AnnualBasic(monthly float64) float64 {
	return monthly * 12
}

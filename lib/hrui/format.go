// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrui

import (
	"strconv"
	"strings"
)

// FormatVND renders an amount in Vietnamese đồng with dot thousands
// separators, the way the payroll office writes figures: 12.345.678 ₫.
// Fractional đồng do not exist in practice; the amount is rounded to
// the nearest whole unit.
func FormatVND(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(int64(amount+0.5), 10)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	result := strings.Join(groups, ".") + " ₫"
	if negative {
		return "-" + result
	}
	return result
}

// FormatMonth renders a month/year pair as MM/YYYY.
func FormatMonth(month string, year int) string {
	if len(month) == 1 {
		month = "0" + month
	}
	return month + "/" + strconv.Itoa(year)
}

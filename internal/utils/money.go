package utils

import (
	"strconv"
	"strings"
)

// FormatRupee renders an integer amount as "₹ 12,345".
func FormatRupee(amount int64) string {
	return "₹ " + FormatThousands(amount)
}

// FormatINR is the ASCII variant used where the rupee sign cannot be rendered.
func FormatINR(amount int64) string {
	return "INR " + FormatThousands(amount)
}

// FormatThousands groups digits with commas, keeping the sign.
func FormatThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
	}
	str := strconv.FormatInt(n, 10)
	str = strings.TrimPrefix(str, "-")

	var out strings.Builder
	out.WriteString(sign)
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

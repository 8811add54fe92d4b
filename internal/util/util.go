package util

func Float64Pointer(f float64) *float64 {
	return &f
}

func StrPointer(s string) *string {
	return &s
}

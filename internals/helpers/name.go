package helper

import "unicode"

// ComposeFullName menggabungkan nama depan + belakang.
// Nama latin digabung dengan spasi ("Budi Santoso"); nama non-latin
// (mis. aksara CJK) ditulis nama keluarga dulu tanpa spasi.
func ComposeFullName(firstName, lastName string) string {
	if isASCIIAlpha(firstName) && isASCIIAlpha(lastName) {
		return firstName + " " + lastName
	}
	return lastName + firstName
}

func isASCIIAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

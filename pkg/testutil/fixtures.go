package testutil

// Document fixtures verified by hand against the check-digit algorithm.
const (
	CPF          = "11144477735"
	CPFFormatted = "111.444.777-35"
	// CPFBadDigit is CPF with its last digit incremented.
	CPFBadDigit = "11144477736"

	CNPJ          = "11222333000181"
	CNPJFormatted = "11.222.333/0001-81"
	// CNPJBadDigit is CNPJ with its last digit incremented.
	CNPJBadDigit          = "11222333000182"
	CNPJBadDigitFormatted = "11.222.333/0001-82"
)

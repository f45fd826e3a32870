package phone

// Kenyan mobile numbers: +254 then nine digits. Two leading digits identify
// the operator per the CA numbering plan; the 11x range is Safaricom's
// newer allocation.
var kenyaRule = countryRule{
	country:   "KE",
	dialCode:  254,
	nsnLength: 9,
	groups:    []int{3, 3, 3},
	operators: map[string]Operator{
		"10": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
		"11": {ID: "SAFARICOM", Name: "Safaricom", MobileMoney: "M-PESA"},
		"70": {ID: "SAFARICOM", Name: "Safaricom", MobileMoney: "M-PESA"},
		"71": {ID: "SAFARICOM", Name: "Safaricom", MobileMoney: "M-PESA"},
		"72": {ID: "SAFARICOM", Name: "Safaricom", MobileMoney: "M-PESA"},
		"73": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
		"75": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
		"76": {ID: "EQUITEL", Name: "Equitel", MobileMoney: "Equitel Money"},
		"77": {ID: "TELKOM", Name: "Telkom Kenya", MobileMoney: "T-Kash"},
		"78": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
		"79": {ID: "SAFARICOM", Name: "Safaricom", MobileMoney: "M-PESA"},
	},
}

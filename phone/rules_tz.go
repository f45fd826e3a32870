package phone

// Tanzanian mobile numbers: +255 then nine digits, the first two of which
// identify the operator. Prefix allocations follow the TCRA national
// numbering plan.
var tanzaniaRule = countryRule{
	country:   "TZ",
	dialCode:  255,
	nsnLength: 9,
	groups:    []int{3, 3, 3},
	operators: map[string]Operator{
		"61": {ID: "HALOTEL", Name: "Halotel", MobileMoney: "HaloPesa"},
		"62": {ID: "HALOTEL", Name: "Halotel", MobileMoney: "HaloPesa"},
		"65": {ID: "TIGO", Name: "Tigo", MobileMoney: "Tigo Pesa"},
		"67": {ID: "TIGO", Name: "Tigo", MobileMoney: "Tigo Pesa"},
		"68": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
		"69": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
		"71": {ID: "TIGO", Name: "Tigo", MobileMoney: "Tigo Pesa"},
		"73": {ID: "TTCL", Name: "TTCL", MobileMoney: "T-Pesa"},
		"74": {ID: "VODACOM", Name: "Vodacom", MobileMoney: "M-Pesa"},
		"75": {ID: "VODACOM", Name: "Vodacom", MobileMoney: "M-Pesa"},
		"76": {ID: "VODACOM", Name: "Vodacom", MobileMoney: "M-Pesa"},
		"77": {ID: "ZANTEL", Name: "Zantel", MobileMoney: "Ezy Pesa"},
		"78": {ID: "AIRTEL", Name: "Airtel", MobileMoney: "Airtel Money"},
	},
}

package repository

import "github.com/eslsoft/benkyo/pkg/filterexpr"

const (
	orderKeyName      = "name"
	orderKeyQuestions = "questions"
)

var listTopicsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"name": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Name",
				filterexpr.OpSW: "NamePrefix",
				filterexpr.OpIN: "Names",
			},
		},
		"questions": {
			Kind: filterexpr.KindNumber,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "MinQuestions",
				filterexpr.OpLTE: "MaxQuestions",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: orderKeyName,
		FallbackKey:    orderKeyQuestions,
		Keys:           []string{orderKeyName, orderKeyQuestions},
	},
}

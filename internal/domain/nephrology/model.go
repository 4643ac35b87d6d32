package nephrology

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// CKDEpi2021Request is the typed body of the dedicated CKD-EPI 2021 endpoint.
type CKDEpi2021Request struct {
	Sex             string  `json:"sex"`
	Age             float64 `json:"age"`
	SerumCreatinine float64 `json:"serum_creatinine"`
}

func (r CKDEpi2021Request) params() registry.Params {
	return registry.Params{
		"sex":              r.Sex,
		"age":              r.Age,
		"serum_creatinine": r.SerumCreatinine,
	}
}

package cardiology

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// CorrectedQTRequest is the typed body of the dedicated QTc endpoint.
type CorrectedQTRequest struct {
	QTInterval float64 `json:"qt_interval"`
	HeartRate  float64 `json:"heart_rate"`
	Formula    string  `json:"formula"`
}

func (r CorrectedQTRequest) params() registry.Params {
	return registry.Params{
		"qt_interval": r.QTInterval,
		"heart_rate":  r.HeartRate,
		"formula":     r.Formula,
	}
}

// Cha2ds2VascRequest is the typed body of the dedicated CHA2DS2-VASc
// endpoint.
type Cha2ds2VascRequest struct {
	Age                      float64 `json:"age"`
	Sex                      string  `json:"sex"`
	CongestiveHeartFailure   bool    `json:"congestive_heart_failure"`
	Hypertension             bool    `json:"hypertension"`
	StrokeTIAThromboembolism bool    `json:"stroke_tia_thromboembolism"`
	VascularDisease          bool    `json:"vascular_disease"`
	Diabetes                 bool    `json:"diabetes"`
}

func (r Cha2ds2VascRequest) params() registry.Params {
	return registry.Params{
		"age":                        r.Age,
		"sex":                        r.Sex,
		"congestive_heart_failure":   r.CongestiveHeartFailure,
		"hypertension":               r.Hypertension,
		"stroke_tia_thromboembolism": r.StrokeTIAThromboembolism,
		"vascular_disease":           r.VascularDisease,
		"diabetes":                   r.Diabetes,
	}
}

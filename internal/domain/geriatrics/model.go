package geriatrics

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// CharlsonRequest is the typed body of the dedicated Charlson endpoint.
// Every comorbidity defaults to absent.
type CharlsonRequest struct {
	Age                        int  `json:"age"`
	MyocardialInfarction       bool `json:"myocardial_infarction"`
	CongestiveHeartFailure     bool `json:"congestive_heart_failure"`
	PeripheralVascularDisease  bool `json:"peripheral_vascular_disease"`
	CerebrovascularDisease     bool `json:"cerebrovascular_disease"`
	Dementia                   bool `json:"dementia"`
	COPD                       bool `json:"copd"`
	ConnectiveTissueDisease    bool `json:"connective_tissue_disease"`
	PepticUlcerDisease         bool `json:"peptic_ulcer_disease"`
	MildLiverDisease           bool `json:"mild_liver_disease"`
	DiabetesUncomplicated      bool `json:"diabetes_uncomplicated"`
	Hemiplegia                 bool `json:"hemiplegia"`
	ModerateSevereCKD          bool `json:"moderate_severe_ckd"`
	DiabetesEndOrganDamage     bool `json:"diabetes_end_organ_damage"`
	LocalizedSolidTumor        bool `json:"localized_solid_tumor"`
	Leukemia                   bool `json:"leukemia"`
	Lymphoma                   bool `json:"lymphoma"`
	ModerateSevereLiverDisease bool `json:"moderate_severe_liver_disease"`
	MetastaticSolidTumor       bool `json:"metastatic_solid_tumor"`
	AIDS                       bool `json:"aids"`
}

func (r CharlsonRequest) params() registry.Params {
	return registry.Params{
		"age":                           r.Age,
		"myocardial_infarction":         r.MyocardialInfarction,
		"congestive_heart_failure":      r.CongestiveHeartFailure,
		"peripheral_vascular_disease":   r.PeripheralVascularDisease,
		"cerebrovascular_disease":       r.CerebrovascularDisease,
		"dementia":                      r.Dementia,
		"copd":                          r.COPD,
		"connective_tissue_disease":     r.ConnectiveTissueDisease,
		"peptic_ulcer_disease":          r.PepticUlcerDisease,
		"mild_liver_disease":            r.MildLiverDisease,
		"diabetes_uncomplicated":        r.DiabetesUncomplicated,
		"hemiplegia":                    r.Hemiplegia,
		"moderate_severe_ckd":           r.ModerateSevereCKD,
		"diabetes_end_organ_damage":     r.DiabetesEndOrganDamage,
		"localized_solid_tumor":         r.LocalizedSolidTumor,
		"leukemia":                      r.Leukemia,
		"lymphoma":                      r.Lymphoma,
		"moderate_severe_liver_disease": r.ModerateSevereLiverDisease,
		"metastatic_solid_tumor":        r.MetastaticSolidTumor,
		"aids":                          r.AIDS,
	}
}

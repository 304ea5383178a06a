package scoring

// Disorder is the canonical id of a predicted condition.
type Disorder string

const (
	DisorderDepression            Disorder = "depression"
	DisorderAnxiety               Disorder = "anxiety"
	DisorderADHD                  Disorder = "adhd"
	DisorderAlcohol               Disorder = "alcohol"
	DisorderBingeEating           Disorder = "binge-eating"
	DisorderDrugAbuse             Disorder = "drug-abuse"
	DisorderInsomnia              Disorder = "insomnia"
	DisorderBurnout               Disorder = "burnout"
	DisorderMoodDisorder          Disorder = "mood-disorder"
	DisorderObsessionalCompulsive Disorder = "obsessional-compulsive"
	DisorderPTSD                  Disorder = "ptsd"
	DisorderPanicDisorder         Disorder = "panic-disorder"
	DisorderStress                Disorder = "stress"
	DisorderSocialPhobia          Disorder = "social-phobia"
	DisorderPhobia                Disorder = "phobia"
)

var scaleDisorders = map[string]Disorder{
	"PHQ-9":   DisorderDepression,
	"GAD-7":   DisorderAnxiety,
	"ASRS":    DisorderADHD,
	"AUDIT":   DisorderAlcohol,
	"BES":     DisorderBingeEating,
	"DAST-10": DisorderDrugAbuse,
	"ISI":     DisorderInsomnia,
	"MBI":     DisorderBurnout,
	"MDQ":     DisorderMoodDisorder,
	"OCI-R":   DisorderObsessionalCompulsive,
	"PCL-5":   DisorderPTSD,
	"PDSS":    DisorderPanicDisorder,
	"PSS":     DisorderStress,
	"SPIN":    DisorderSocialPhobia,
	"Phobia":  DisorderPhobia,
}

// Severity strings below which a disorder is predicted negative. Matching is exact.
const (
	floorSubclinical = "subclinical"
	floorMinimal     = "minimal"
)

// DisorderForScale returns the disorder predicted by a scale abbreviation.
func DisorderForScale(abbrev string) (Disorder, bool) {
	d, ok := scaleDisorders[abbrev]
	return d, ok
}

// CreateDisorderPredictionsFromSeverity maps severities keyed by scale
// abbreviation to disorder predictions. Any severity other than the two
// floor labels counts as positive. Unknown scales are skipped.
func CreateDisorderPredictionsFromSeverity(severities map[string]string) map[Disorder]bool {
	out := make(map[Disorder]bool, len(severities))
	for scale, severity := range severities {
		d, ok := scaleDisorders[scale]
		if !ok {
			continue
		}
		out[d] = severity != floorSubclinical && severity != floorMinimal
	}
	return out
}

// SeverityByScale rekeys batch severity labels by scale abbreviation and
// resolves each label to its ClinicalLevel through LevelFor, producing input for
// CreateDisorderPredictionsFromSeverity. Questionnaires without a disorder
// mapping are dropped.
func SeverityByScale(levels map[Questionnaire]string) map[string]string {
	out := make(map[string]string, len(levels))
	for q, label := range levels {
		abbrev := q.ScaleAbbreviation()
		if _, ok := scaleDisorders[abbrev]; !ok {
			continue
		}
		out[abbrev] = string(LevelFor(q, label))
	}
	return out
}

package scoring

// Config is the static scoring configuration of one questionnaire.
type Config struct {
	ScoreMapping  map[int]int
	ReverseScored []int
	Bands         []SeverityBand

	// instrument replaces the summing algorithm for questionnaires whose
	// published scoring is not a plain sum.
	instrument instrumentScorer
}

// reverseCeiling is the top of the 0-4 point scale used when inverting a
// reverse-scored item.
const reverseCeiling = 4

func (c Config) isReversed(i int) bool {
	for _, r := range c.ReverseScored {
		if r == i {
			return true
		}
	}
	return false
}

func identity(max int) map[int]int {
	m := make(map[int]int, max+1)
	for i := 0; i <= max; i++ {
		m[i] = i
	}
	return m
}

var scoringTable = map[Questionnaire]Config{
	Stress: {
		ScoreMapping:  map[int]int{0: 4, 1: 3, 2: 2, 3: 1, 4: 0},
		ReverseScored: []int{3, 4, 6, 7},
		Bands: []SeverityBand{
			{Key: "low", Min: 0, Max: 13, Label: "Low Stress", Level: LevelSubclinical},
			{Key: "moderate", Min: 14, Max: 26, Label: "Moderate Stress", Level: LevelModerate},
			{Key: "high", Min: 27, Max: 40, Label: "High Stress", Level: LevelSevere},
		},
	},
	Anxiety: {
		ScoreMapping: identity(3),
		Bands: []SeverityBand{
			{Key: "minimal", Min: 0, Max: 4, Label: "Minimal Anxiety", Level: LevelSubclinical},
			{Key: "mild", Min: 5, Max: 9, Label: "Mild Anxiety", Level: LevelMild},
			{Key: "moderate", Min: 10, Max: 14, Label: "Moderate Anxiety", Level: LevelModerate},
			{Key: "severe", Min: 15, Max: 21, Label: "Severe Anxiety", Level: LevelSevere},
		},
	},
	Depression: {
		ScoreMapping: identity(3),
		Bands: []SeverityBand{
			{Key: "none", Min: 0, Max: 0, Label: "No Depression", Level: LevelSubclinical},
			{Key: "mildModerate", Min: 1, Max: 15, Label: "Mild-Moderate Depression", Level: LevelModerate},
			{Key: "moderateSevere", Min: 16, Max: 25, Label: "Moderate-Severe Depression", Level: LevelSevere},
			{Key: "verySevere", Min: 26, Max: 120, Label: "Very Severe Depression", Level: LevelExtreme},
		},
	},
	Insomnia: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "none", Min: 0, Max: 7, Label: "No Insomnia", Level: LevelSubclinical},
			{Key: "subthreshold", Min: 8, Max: 14, Label: "Subthreshold Insomnia", Level: LevelSubclinical},
			{Key: "moderate", Min: 15, Max: 21, Label: "Moderate Insomnia", Level: LevelModerate},
			{Key: "severe", Min: 22, Max: 28, Label: "Severe Insomnia", Level: LevelSevere},
		},
	},
	Panic: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "minimal", Min: 0, Max: 7, Label: "Minimal", Level: LevelSubclinical},
			{Key: "mild", Min: 8, Max: 10, Label: "Mild", Level: LevelMild},
			{Key: "moderate", Min: 11, Max: 15, Label: "Moderate", Level: LevelModerate},
			{Key: "severe", Min: 16, Max: 28, Label: "Severe", Level: LevelSevere},
		},
	},
	Bipolar: {
		ScoreMapping: identity(1),
		Bands: []SeverityBand{
			{Key: "negative", Min: 0, Max: 0, Label: mdqNegative, Level: LevelSubclinical},
			{Key: "positive", Min: 1, Max: 1, Label: mdqPositive, Level: LevelSevere},
		},
		instrument: scoreMDQ,
	},
	OCD: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "below", Min: 0, Max: 20, Label: "Below Threshold", Level: LevelSubclinical},
			{Key: "clinical", Min: 21, Max: 72, Label: "Clinical Range", Level: LevelModerate},
		},
	},
	PTSD: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "below", Min: 0, Max: 32, Label: "Below Threshold", Level: LevelSubclinical},
			{Key: "probable", Min: 33, Max: 80, Label: "Probable PTSD", Level: LevelSevere},
		},
	},
	SocialAnxiety: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "below", Min: 0, Max: 33, Label: "Below Threshold", Level: LevelSubclinical},
			{Key: "specific", Min: 34, Max: 42, Label: "Social anxiety specific (Potential Social Phobia)", Level: LevelModerate},
			{Key: "generalized", Min: 43, Max: 80, Label: "Generalized Social Interaction Anxiety", Level: LevelSevere},
		},
	},
	Phobia: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "none", Min: 0, Max: 20, Label: "No significant phobia", Level: LevelSubclinical},
			{Key: "mild", Min: 21, Max: 40, Label: "Mild phobia", Level: LevelMild},
			{Key: "moderate", Min: 41, Max: 60, Label: "Moderate phobia", Level: LevelModerate},
			{Key: "severe", Min: 61, Max: 80, Label: "Severe phobia", Level: LevelSevere},
			{Key: "extreme", Min: 81, Max: 100, Label: "Extreme phobia", Level: LevelExtreme},
		},
	},
	Burnout: {
		ScoreMapping: identity(6),
		Bands: []SeverityBand{
			{Key: "interpretation", Min: 0, Max: 132, Label: "MBI Scale", Level: LevelMild},
		},
		instrument: scoreMBI,
	},
	BingeEating: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "minimal", Min: 0, Max: 17, Label: "Minimal/No Binge Eating", Level: LevelSubclinical},
			{Key: "mildModerate", Min: 18, Max: 26, Label: "Mild to moderate binge eating", Level: LevelModerate},
			{Key: "severe", Min: 27, Max: 46, Label: "Severe binge eating", Level: LevelSevere},
		},
	},
	ADHD: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "low", Min: 0, Max: 30, Label: "Low", Level: LevelSubclinical},
			{Key: "mildModerate", Min: 31, Max: 39, Label: "Mild to Moderate", Level: LevelModerate},
			{Key: "high", Min: 40, Max: 49, Label: "High", Level: LevelSevere},
			{Key: "veryHigh", Min: 50, Max: 72, Label: "Very High", Level: LevelExtreme},
		},
		instrument: scoreASRS,
	},
	AlcoholUse: {
		ScoreMapping: identity(4),
		Bands: []SeverityBand{
			{Key: "low", Min: 0, Max: 7, Label: "Low Risk", Level: LevelSubclinical},
			{Key: "hazardous", Min: 8, Max: 15, Label: "Hazardous", Level: LevelMild},
			{Key: "harmful", Min: 16, Max: 19, Label: "Harmful", Level: LevelModerate},
			{Key: "dependent", Min: 20, Max: 40, Label: "Dependent", Level: LevelSevere},
		},
	},
	DrugIssues: {
		ScoreMapping: identity(1),
		Bands: []SeverityBand{
			{Key: "none", Min: 0, Max: 0, Label: "No Problems", Level: LevelSubclinical},
			{Key: "low", Min: 1, Max: 2, Label: "Low Level", Level: LevelMild},
			{Key: "moderate", Min: 3, Max: 5, Label: "Moderate Level", Level: LevelModerate},
			{Key: "substantial", Min: 6, Max: 8, Label: "Substantial Level", Level: LevelSevere},
			{Key: "severe", Min: 9, Max: 10, Label: "Severe Level", Level: LevelExtreme},
		},
	},
	DepressionSecondary: {
		ScoreMapping: identity(3),
		Bands: []SeverityBand{
			{Key: "minimal", Min: 0, Max: 4, Label: "Minimal", Level: LevelSubclinical},
			{Key: "mild", Min: 5, Max: 9, Label: "Mild", Level: LevelMild},
			{Key: "moderate", Min: 10, Max: 14, Label: "Moderate", Level: LevelModerate},
			{Key: "moderatelySevere", Min: 15, Max: 19, Label: "Moderately Severe", Level: LevelSevere},
			{Key: "severe", Min: 20, Max: 27, Label: "Severe", Level: LevelSevere},
		},
	},
}

// ConfigFor returns a copy of the scoring configuration of q.
func ConfigFor(q Questionnaire) (Config, bool) {
	c, ok := scoringTable[q]
	if !ok {
		return Config{}, false
	}
	out := Config{
		ScoreMapping:  make(map[int]int, len(c.ScoreMapping)),
		ReverseScored: append([]int(nil), c.ReverseScored...),
		Bands:         append([]SeverityBand(nil), c.Bands...),
		instrument:    c.instrument,
	}
	for k, v := range c.ScoreMapping {
		out.ScoreMapping[k] = v
	}
	return out, true
}

package insights

import (
	"fmt"
	"strings"

	"github.com/mentara/mentara/internal/domain/scoring"
)

// aiKeys are the boolean fields of the AI estimate that correspond to a questionnaire.
var aiKeys = map[scoring.Questionnaire]string{
	scoring.Depression:    "Has_Depression",
	scoring.Anxiety:       "Has_Anxiety",
	scoring.PTSD:          "Has_PTSD",
	scoring.Bipolar:       "Has_Bipolar",
	scoring.OCD:           "Has_OCD",
	scoring.ADHD:          "Has_ADHD",
	scoring.SocialAnxiety: "Has_Social_Anxiety",
	scoring.Panic:         "Has_Panic_Disorder",
	scoring.Phobia:        "Has_Phobias",
	scoring.AlcoholUse:    "Has_Substance_Use",
	scoring.BingeEating:   "Has_Eating_Disorder",
}

var highRiskConditions = map[scoring.Questionnaire]bool{
	scoring.Depression: true,
	scoring.Bipolar:    true,
	scoring.PTSD:       true,
	scoring.AlcoholUse: true,
}

var levelPriority = map[scoring.ClinicalLevel]int{
	scoring.LevelExtreme:     10,
	scoring.LevelSevere:      8,
	scoring.LevelModerate:    6,
	scoring.LevelMild:        4,
	scoring.LevelSubclinical: 2,
}

var indicators = map[scoring.Questionnaire][]string{
	scoring.Depression: {
		"Persistent low mood and sadness",
		"Loss of interest in previously enjoyed activities",
		"Fatigue and decreased energy",
		"Sleep disturbances",
		"Appetite changes",
		"Feelings of worthlessness or guilt",
		"Difficulty concentrating",
		"Psychomotor agitation or retardation",
	},
	scoring.Anxiety: {
		"Excessive worry and apprehension",
		"Restlessness and feeling on edge",
		"Difficulty concentrating",
		"Irritability",
		"Muscle tension",
		"Sleep difficulties",
		"Fatigue from worry",
	},
	scoring.PTSD: {
		"Re-experiencing traumatic events",
		"Avoidance of trauma-related stimuli",
		"Negative alterations in mood and cognition",
		"Hypervigilance and exaggerated startle response",
		"Sleep disturbances and nightmares",
		"Emotional numbing",
		"Intrusive thoughts and flashbacks",
	},
	scoring.Bipolar: {
		"Mood episodes (manic or depressive)",
		"Elevated or irritable mood",
		"Decreased need for sleep during episodes",
		"Racing thoughts and pressured speech",
		"Grandiosity or inflated self-esteem",
		"Distractibility",
		"Increased goal-directed activity",
	},
}

var focusAreas = map[scoring.Questionnaire][]string{
	scoring.Depression: {
		"Cognitive restructuring and thought challenging",
		"Behavioral activation and activity scheduling",
		"Mood monitoring and regulation",
		"Social support and interpersonal skills",
	},
	scoring.Anxiety: {
		"Anxiety management techniques",
		"Exposure therapy for specific fears",
		"Relaxation and mindfulness training",
		"Cognitive restructuring for worry",
	},
	scoring.PTSD: {
		"Trauma processing and integration",
		"EMDR or trauma-focused therapy",
		"Coping skills for triggers",
		"Safety and stabilization",
	},
	scoring.Bipolar: {
		"Mood stabilization techniques",
		"Medication adherence support",
		"Trigger identification and management",
		"Psychoeducation about bipolar disorder",
	},
}

var defaultFocus = []string{"Symptom management", "Coping strategies development", "Functional improvement"}

var conditionRecommendations = map[scoring.Questionnaire][]string{
	scoring.Depression: {
		"Cognitive Behavioral Therapy (CBT) strongly recommended",
		"Consider medication evaluation with psychiatrist",
		"Regular mood monitoring and safety planning",
	},
	scoring.Anxiety: {
		"CBT or Acceptance and Commitment Therapy (ACT)",
		"Mindfulness and relaxation training",
		"Gradual exposure to anxiety triggers",
	},
	scoring.PTSD: {
		"Trauma-focused therapy (EMDR, CPT, or PE)",
		"Specialized PTSD treatment program",
		"Safety planning and stabilization first",
	},
}

var defaultRecommendations = []string{
	"Evidence-based psychotherapy",
	"Regular monitoring of symptoms",
	"Psychoeducation about the condition",
}

var approaches = map[scoring.Questionnaire][]string{
	scoring.Depression: {"Cognitive Behavioral Therapy (CBT)", "Interpersonal Therapy (IPT)", "Mindfulness-Based Cognitive Therapy"},
	scoring.Anxiety:    {"Cognitive Behavioral Therapy (CBT)", "Acceptance and Commitment Therapy (ACT)", "Exposure Therapy"},
	scoring.PTSD:       {"EMDR", "Cognitive Processing Therapy", "Prolonged Exposure Therapy"},
	scoring.Bipolar:    {"Dialectical Behavior Therapy (DBT)", "Cognitive Behavioral Therapy (CBT)", "Psychoeducation"},
}

var defaultApproaches = []string{"Cognitive Behavioral Therapy (CBT)", "Psychodynamic Therapy"}

var goals = map[scoring.Questionnaire][]string{
	scoring.Depression: {"Reduce depressive symptoms", "Improve mood regulation", "Increase behavioral activation", "Enhance coping strategies"},
	scoring.Anxiety:    {"Reduce anxiety symptoms", "Develop relaxation skills", "Increase tolerance for uncertainty", "Improve daily functioning"},
}

var defaultGoals = []string{"Reduce symptom severity", "Improve functional capacity", "Develop coping strategies", "Prevent relapse"}

var estimatedDurations = map[scoring.ClinicalLevel]string{
	scoring.LevelExtreme:     "12-18 months intensive therapy",
	scoring.LevelSevere:      "6-12 months regular therapy",
	scoring.LevelModerate:    "3-6 months therapy",
	scoring.LevelMild:        "2-4 months therapy",
	scoring.LevelSubclinical: "1-2 months brief intervention",
}

func keyIndicators(q scoring.Questionnaire, level scoring.ClinicalLevel) []string {
	base, ok := indicators[q]
	if !ok {
		base = []string{
			fmt.Sprintf("Elevated %s symptoms", strings.ToLower(q.DisplayName())),
			"Functional impairment in daily activities",
			"Distress related to symptoms",
		}
	}
	switch level {
	case scoring.LevelMild:
		return clone(base[:min(3, len(base))])
	case scoring.LevelModerate:
		return clone(base[:min(5, len(base))])
	}
	return clone(base)
}

func lookup(table map[scoring.Questionnaire][]string, q scoring.Questionnaire, fallback []string) []string {
	if v, ok := table[q]; ok {
		return clone(v)
	}
	return clone(fallback)
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

// UrgencyForRisk maps a risk level to the urgency of acting on it.
func UrgencyForRisk(r RiskLevel) Urgency {
	switch r {
	case RiskCritical:
		return UrgencyImmediate
	case RiskHigh:
		return UrgencyHigh
	case RiskModerate:
		return UrgencyModerate
	}
	return UrgencyRoutine
}

package constvars

const (
	ResourcePatient     = "Patient"
	ResourceObservation = "Observation"
	ResourceCondition   = "Condition"
	ResourceBundle      = "Bundle"
)

const (
	FhirBundleTypeTransaction = "transaction"

	FhirObservationStatusFinal = "final"
)

// Terminology systems referenced by the mapped resources.
const (
	FhirObservationCategorySystem = "http://terminology.hl7.org/CodeSystem/observation-category"
	FhirConditionClinicalSystem   = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	FhirConditionVerStatusSystem  = "http://terminology.hl7.org/CodeSystem/condition-ver-status"
	FhirConditionCategorySystem   = "http://terminology.hl7.org/CodeSystem/condition-category"
	FhirSnomedSystem              = "http://snomed.info/sct"
	FhirIcd10System               = "http://hl7.org/fhir/sid/icd-10"
	FhirUcumSystem                = "http://unitsofmeasure.org"

	ClinixTriageSystem  = "http://clinixai.com/triage"
	ClinixUrgencySystem = "http://clinixai.com/urgency"
)

const (
	ClinixTriageCode           = "emergency-triage"
	ClinixTriageDisplay        = "Emergency Triage Assessment"
	ClinixTriageText           = "ClinixAI Emergency Triage"
	ClinixConfidenceScoreCode  = "confidence-score"
	ClinixConfidenceScoreText  = "AI Confidence Score"
	ClinixRecommendedActionCode = "recommended-action"
	ClinixRecommendedActionText = "Recommended Action"

	FhirObservationCategoryExam        = "exam"
	FhirObservationCategoryExamDisplay = "Exam"

	FhirConditionClinicalActive        = "active"
	FhirConditionVerStatusProvisional  = "provisional"
	FhirConditionCategoryProblemList   = "problem-list-item"

	FhirQuantityUnitRatio = "ratio"
	FhirQuantityCodeRatio = "{ratio}"
)

// SNOMED CT severity codes for the three-tier symptom bucketing.
const (
	FhirSeverityCodeSevere   = "24484000"
	FhirSeverityCodeModerate = "6736007"
	FhirSeverityCodeMild     = "255604002"

	FhirSeverityDisplaySevere   = "Severe"
	FhirSeverityDisplayModerate = "Moderate"
	FhirSeverityDisplayMild     = "Mild"
)

const (
	UrgencyLevelCritical  = "critical"
	UrgencyLevelUrgent    = "urgent"
	UrgencyLevelStandard  = "standard"
	UrgencyLevelNonUrgent = "non-urgent"
)

// Search parameters for patient history queries.
const (
	FhirSearchSubjectParam          = "subject"
	FhirSearchSortByDateDesc        = "-date"
	FhirSearchSortByRecordedDateDesc = "-recorded-date"
)

package models

import (
	"strconv"
	"strings"
)

// GhostStatus is the discrete classification tier of a load balancer
type GhostStatus string

const (
	StatusDefiniteGhost  GhostStatus = "DEFINITE GHOST"
	StatusLikelyGhost    GhostStatus = "LIKELY GHOST"
	StatusSuspicious     GhostStatus = "SUSPICIOUS"
	StatusReviewNeeded   GhostStatus = "REVIEW NEEDED"
	StatusActive         GhostStatus = "ACTIVE"
	StatusAnalysisFailed GhostStatus = "ANALYSIS FAILED"
)

// Score thresholds, closed below. ThresholdSuspicious doubles as the report
// cut-off for what counts as a potential ghost.
const (
	ThresholdDefiniteGhost = 80
	ThresholdLikelyGhost   = 60
	ThresholdSuspicious    = 40
	ThresholdReviewNeeded  = 20
)

// UnknownValue is used for descriptive fields the provider did not report
const UnknownValue = "Unknown"

// CSVHeader is the column order of exported verdicts
var CSVHeader = []string{
	"LoadBalancerName",
	"LoadBalancerType",
	"Compartment",
	"Shape",
	"LifecycleState",
	"GhostScore",
	"GhostStatus",
	"GhostReasons",
	"BackendSetCount",
	"ListenerCount",
	"CertificateCount",
	"TimeCreated",
	"LoadBalancerId",
	"Tags",
	"BackendSetDetails",
	"ListenerDetails",
}

// GhostVerdict is the classification result for one load balancer, together
// with the descriptive fields echoed for reporting.
type GhostVerdict struct {
	Name              string
	Type              LoadBalancerType
	Compartment       string
	Shape             string
	LifecycleState    string
	Score             int
	Status            GhostStatus
	Reasons           []string
	BackendSetCount   int
	ListenerCount     int
	CertificateCount  int
	TimeCreated       string // Raw creation timestamp or "Unknown"
	ID                string
	Tags              string
	BackendSetDetails string
	ListenerDetails   string
}

// IsSuspicious reports whether the verdict meets the potential-ghost threshold
func (v GhostVerdict) IsSuspicious() bool {
	return v.Score >= ThresholdSuspicious
}

// Failed reports whether the analysis of this load balancer failed
func (v GhostVerdict) Failed() bool {
	return v.Status == StatusAnalysisFailed
}

// ReasonsText joins the reasons the way reports display them
func (v GhostVerdict) ReasonsText() string {
	return strings.Join(v.Reasons, "; ")
}

// CSVRow returns the verdict fields in CSVHeader order
func (v GhostVerdict) CSVRow() []string {
	return []string{
		v.Name,
		string(v.Type),
		v.Compartment,
		v.Shape,
		v.LifecycleState,
		strconv.Itoa(v.Score),
		string(v.Status),
		v.ReasonsText(),
		strconv.Itoa(v.BackendSetCount),
		strconv.Itoa(v.ListenerCount),
		strconv.Itoa(v.CertificateCount),
		v.TimeCreated,
		v.ID,
		v.Tags,
		v.BackendSetDetails,
		v.ListenerDetails,
	}
}

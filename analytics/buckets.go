package analytics

// BucketBound is one row of an ordered classification table. Upper is the
// exclusive upper bound for the bucket; a nil Upper is the trailing
// catch-all row. Rows are evaluated in order and the first satisfied bound
// wins, so a value sitting exactly on a boundary lands in the next bucket
// (30 bench days is "30-60 days", not "<30 days").
type BucketBound struct {
	Upper *float64
	Name  string
	Risk  string
}

// UnknownBucket receives nil and negative inputs. It is excluded from
// percentage denominators and only reported when non-empty.
const UnknownBucket = "Unknown"

func bound(v float64) *float64 { return &v }

// SeniorityBuckets maps years of experience to a seniority tier.
var SeniorityBuckets = []BucketBound{
	{Upper: bound(3), Name: "Junior"},
	{Upper: bound(6), Name: "Mid"},
	{Upper: nil, Name: "Senior"},
}

// BenchAgingBuckets maps days on bench to an aging bucket with an
// associated risk level.
var BenchAgingBuckets = []BucketBound{
	{Upper: bound(30), Name: "<30 days", Risk: "low"},
	{Upper: bound(60), Name: "30-60 days", Risk: "medium"},
	{Upper: bound(90), Name: "60-90 days", Risk: "high"},
	{Upper: nil, Name: ">90 days", Risk: "high"},
}

// Classify maps a value onto a bucket table. Classification is total:
// every input maps to exactly one bucket name, with nil and negative
// values routed to UnknownBucket.
func Classify(value *float64, table []BucketBound) (name string, risk string) {
	if value == nil || *value < 0 {
		return UnknownBucket, ""
	}
	for _, b := range table {
		if b.Upper == nil || *value < *b.Upper {
			return b.Name, b.Risk
		}
	}
	// Table without a catch-all row; still total.
	return UnknownBucket, ""
}

// RiskFor returns the risk level declared for a bucket name, or "" when
// the table does not know the bucket.
func RiskFor(name string, table []BucketBound) string {
	for _, b := range table {
		if b.Name == name {
			return b.Risk
		}
	}
	return ""
}

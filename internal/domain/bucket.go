package domain

// Bucket is a language/platform partition that owns its own set of test groups
type Bucket string

const (
	// BucketCFamily holds C and C++ groups together (unified mode)
	BucketCFamily Bucket = "c/c++"
	// BucketC holds C groups (split mode)
	BucketC Bucket = "c"
	// BucketCPP holds C++ groups (split mode)
	BucketCPP Bucket = "c++"
	// BucketObjC holds Objective-C groups, scanned on Apple platforms only
	BucketObjC Bucket = "objc"
	// BucketObjCPP holds Objective-C++ groups, scanned on Apple platforms only
	BucketObjCPP Bucket = "objc++"
)

// Title returns the human readable language name used in generated headers
func (b Bucket) Title() string {
	switch b {
	case BucketCFamily:
		return "C/C++"
	case BucketC:
		return "C"
	case BucketCPP:
		return "C++"
	case BucketObjC:
		return "Objective-C"
	case BucketObjCPP:
		return "Objective-C++"
	default:
		return string(b)
	}
}

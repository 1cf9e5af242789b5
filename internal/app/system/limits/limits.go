// internal/app/system/limits/limits.go
package limits

const (
	// MaxListSize caps the number of documents returned by the list endpoints.
	MaxListSize = 1000

	// MaxRequestBodySize is the largest JSON body the API will decode.
	MaxRequestBodySize = 1 << 20 // 1 MB
)

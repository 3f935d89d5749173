package wafcdk

import "errors"

// Resolution and validation failures. All of them surface synchronously while
// the construct is being built, never while traffic is served.
var (
	// ErrInvalidDomainFormat is returned when the custom domain fails
	// structural validation.
	ErrInvalidDomainFormat = errors.New("invalid domain format")

	// ErrHostedZoneRequired is returned when a custom domain is configured
	// without a hosted zone to hold its records.
	ErrHostedZoneRequired = errors.New("hosted zone required")

	// ErrZoneDomainMismatch is returned when the custom domain is not the
	// apex, a subdomain, or a wildcard of the hosted zone.
	ErrZoneDomainMismatch = errors.New("hosted zone does not match domain")

	// ErrCertificateRegionMismatch is returned when a caller-provided
	// certificate does not live in the region CloudFront mandates.
	ErrCertificateRegionMismatch = errors.New("certificate region mismatch")

	// ErrInvalidCertificateReference is returned when the certificate
	// reference cannot be parsed as an ARN.
	ErrInvalidCertificateReference = errors.New("invalid certificate reference")

	// ErrCertificateGeneration wraps failures while defining the
	// dns-validated certificate.
	ErrCertificateGeneration = errors.New("certificate generation failed")

	// ErrDNSRecordCreation wraps failures while defining the alias records.
	ErrDNSRecordCreation = errors.New("dns record creation failed")
)

package wafcdk

import (
	"fmt"
	"strings"
)

// Inputs is the caller-supplied configuration the resolver reconciles. All
// fields are optional, absence is expressed by a nil pointer.
type Inputs struct {
	// Domain is the custom domain to serve the distribution on.
	Domain *string
	// CertificateArn references a caller-owned viewer certificate.
	CertificateArn *string
	// ZoneName is the name of the hosted zone that holds the domain.
	ZoneName *string
}

// CertificateDecision is the certificate outcome of a resolution. Exactly
// one of the three values holds.
type CertificateDecision int

const (
	// CertificateNone means no viewer certificate is bound.
	CertificateNone CertificateDecision = iota
	// CertificateProvided means the caller-supplied certificate is reused.
	CertificateProvided
	// CertificateGenerated means a dns-validated certificate is created.
	CertificateGenerated
)

func (d CertificateDecision) String() string {
	switch d {
	case CertificateProvided:
		return "provided"
	case CertificateGenerated:
		return "generated"
	default:
		return "none"
	}
}

// Resolution is the validated, normalized configuration. It is computed once
// and never mutated afterwards.
type Resolution struct {
	// Domain is the effective custom domain, nil when none is configured.
	Domain *string
	// Certificate is the certificate decision for the distribution.
	Certificate CertificateDecision
	// CreateDNSRecords reports whether alias records should be created.
	CreateDNSRecords bool
	// Advisories are non-fatal diagnostics about ignored or partially
	// verifiable inputs.
	Advisories []string
}

// Resolve reconciles the optional inputs into a consistent resolution or a
// descriptive failure. It is pure: no construct tree is touched and no
// network calls are made, so it can run entirely offline during synthesis.
//
// The hosted-zone presence check deliberately precedes domain format
// validation: a malformed domain without a zone reports the missing zone
// first.
func Resolve(in Inputs) (Resolution, error) {
	var res Resolution

	if in.Domain == nil {
		if in.CertificateArn != nil {
			res.Advisories = append(res.Advisories,
				"certificate provided without a custom domain: the certificate is ignored, "+
					"set 'Domain' to serve traffic over it")
		}

		if in.ZoneName != nil {
			res.Advisories = append(res.Advisories,
				"hosted zone provided without a custom domain: no DNS records will be created, "+
					"set 'Domain' to enable them")
		}

		return res, nil
	}

	if in.ZoneName == nil {
		return Resolution{}, fmt.Errorf("%w: custom domain %q needs a hosted zone for its DNS records "+
			"and certificate validation, provide 'HostedZone'", ErrHostedZoneRequired, *in.Domain)
	}

	if err := ValidateDomainFormat(*in.Domain); err != nil {
		return Resolution{}, err
	}

	if err := ValidateZoneCompatibility(*in.ZoneName, *in.Domain); err != nil {
		return Resolution{}, err
	}

	res.Domain = in.Domain

	if in.CertificateArn != nil {
		if err := ValidateCertificateRegion(*in.CertificateArn); err != nil {
			return Resolution{}, err
		}

		res.Advisories = append(res.Advisories, coverageAdvisory(*in.Domain))
		res.Certificate = CertificateProvided
	} else {
		res.Certificate = CertificateGenerated
	}

	res.CreateDNSRecords = true

	return res, nil
}

// coverageAdvisory describes the limits of offline certificate validation:
// whether the certificate actually covers the domain is only knowable by
// asking ACM, which happens at deploy time.
func coverageAdvisory(domain string) string {
	if strings.HasPrefix(domain, "*.") {
		return fmt.Sprintf("coverage of the provided certificate for wildcard domain %q cannot be "+
			"verified during synthesis, verification is deferred to deployment", domain)
	}

	return fmt.Sprintf("coverage of the provided certificate for domain %q cannot be verified during "+
		"synthesis, make sure it lists the domain or a matching wildcard", domain)
}

package wafcdk

import (
	"fmt"
	"regexp"
	"strings"
)

// CertificateRegion is the single region CloudFront accepts viewer
// certificates from, regardless of the region the stack deploys to.
const CertificateRegion = "us-east-1"

// maximum length of a full domain name, per RFC 1035.
const maxDomainNameLength = 253

// optional single leading wildcard label, then one or more LDH labels,
// closed off by an alphabetic TLD of at least two characters.
var domainNamePattern = regexp.MustCompile(
	`^(\*\.)?([A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)

// ValidateDomainFormat checks the structure of a custom domain name. It
// accepts apex domains, subdomains and domains with a single leading
// wildcard label.
func ValidateDomainFormat(domain string) error {
	switch {
	case domain == "":
		return fmt.Errorf("%w: domain must be a non-empty string", ErrInvalidDomainFormat)
	case len(domain) > maxDomainNameLength:
		return fmt.Errorf("%w: %q exceeds the maximum length of %d characters",
			ErrInvalidDomainFormat, domain, maxDomainNameLength)
	case strings.Count(domain, "*") > 1:
		return fmt.Errorf("%w: %q contains multiple wildcards, at most one leading '*.' label is allowed",
			ErrInvalidDomainFormat, domain)
	case strings.Contains(domain, "*") && !strings.HasPrefix(domain, "*."):
		return fmt.Errorf("%w: %q may only have a wildcard as its leading '*.' label",
			ErrInvalidDomainFormat, domain)
	case !domainNamePattern.MatchString(domain):
		return fmt.Errorf("%w: %q must consist of dot-separated alphanumeric labels (hyphens allowed inside "+
			"a label) and end with a TLD of at least two letters", ErrInvalidDomainFormat, domain)
	}

	return nil
}

// ValidateCertificateRegion checks that the certificate reference parses as
// an ARN and that its region segment equals CertificateRegion.
func ValidateCertificateRegion(certificateArn string) error {
	region, err := certificateRegion(certificateArn)
	if err != nil {
		return err
	}

	if region != CertificateRegion {
		return fmt.Errorf("%w: certificate %q is in region %q but CloudFront requires viewer certificates "+
			"in %q, import or create the certificate there", ErrCertificateRegionMismatch,
			certificateArn, region, CertificateRegion)
	}

	return nil
}

// certificateRegion extracts the region segment from a certificate ARN:
// arn:aws:acm:<region>:<account>:certificate/<id>.
func certificateRegion(certificateArn string) (string, error) {
	const minArnSegments = 4

	parts := strings.Split(certificateArn, ":")
	if len(parts) < minArnSegments {
		return "", fmt.Errorf("%w: %q cannot be parsed as a certificate ARN, import the certificate "+
			"by its full ARN", ErrInvalidCertificateReference, certificateArn)
	}

	return parts[3], nil
}

// ValidateZoneCompatibility checks that 'domain' can be served from the
// hosted zone named 'zoneName': the zone apex, any subdomain of the zone, or
// the wildcard variant of either.
func ValidateZoneCompatibility(zoneName, domain string) error {
	zone := strings.TrimSuffix(strings.ToLower(zoneName), ".")
	host := strings.TrimSuffix(strings.ToLower(domain), ".")
	host = strings.TrimPrefix(host, "*.")

	if host == zone || strings.HasSuffix(host, "."+zone) {
		return nil
	}

	return fmt.Errorf("%w: domain %q is not the apex, a subdomain, or a wildcard of hosted zone %q, "+
		"provide the zone that is authoritative for the domain", ErrZoneDomainMismatch, domain, zoneName)
}

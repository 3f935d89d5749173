package wafcdk_test

import (
	"strings"

	"github.com/aws/jsii-runtime-go"
	"github.com/edgekit/wafhttpapi/wafcdk"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("domain format", func() {
	DescribeTable("accepted",
		func(domain string) {
			Expect(wafcdk.ValidateDomainFormat(domain)).To(Succeed())
		},
		Entry("apex", "example.com"),
		Entry("subdomain", "api.example.com"),
		Entry("deep subdomain", "v1.api.example.com"),
		Entry("wildcard apex", "*.example.com"),
		Entry("wildcard subdomain", "*.api.example.com"),
		Entry("internal hyphens", "my-api.my-example.com"),
		Entry("digits in labels", "api1.example2.com"),
	)

	DescribeTable("rejected",
		func(domain, reason string) {
			err := wafcdk.ValidateDomainFormat(domain)
			Expect(err).To(MatchError(wafcdk.ErrInvalidDomainFormat))
			Expect(err.Error()).To(ContainSubstring(reason))
		},
		Entry("empty", "", "non-empty"),
		Entry("too long", strings.Repeat("a", 250)+".com", "maximum length"),
		Entry("multiple wildcards", "*.*.example.com", "multiple wildcards"),
		Entry("wildcard not at start", "api.*.example.com", "leading"),
		Entry("leading hyphen", "-api.example.com", "labels"),
		Entry("trailing hyphen", "api-.example.com", "labels"),
		Entry("numeric tld", "example.c0m", "TLD"),
		Entry("single label", "example", "labels"),
		Entry("overlong label", strings.Repeat("a", 64)+".example.com", "labels"),
	)
})

var _ = Describe("certificate region", func() {
	It("should accept the mandated region", func() {
		Expect(wafcdk.ValidateCertificateRegion(
			"arn:aws:acm:us-east-1:111111111111:certificate/abc")).To(Succeed())
	})

	It("should name the mandated region on a mismatch", func() {
		err := wafcdk.ValidateCertificateRegion("arn:aws:acm:us-west-2:111111111111:certificate/abc")
		Expect(err).To(MatchError(wafcdk.ErrCertificateRegionMismatch))
		Expect(err.Error()).To(ContainSubstring("us-east-1"))
		Expect(err.Error()).To(ContainSubstring("us-west-2"))
	})

	It("should reject unparseable references", func() {
		Expect(wafcdk.ValidateCertificateRegion("not-an-arn")).
			To(MatchError(wafcdk.ErrInvalidCertificateReference))
		Expect(wafcdk.ValidateCertificateRegion("${Token[TOKEN.42]}")).
			To(MatchError(wafcdk.ErrInvalidCertificateReference))
	})
})

var _ = Describe("zone compatibility", func() {
	DescribeTable("accepted",
		func(zone, domain string) {
			Expect(wafcdk.ValidateZoneCompatibility(zone, domain)).To(Succeed())
		},
		Entry("apex", "example.com", "example.com"),
		Entry("subdomain", "example.com", "api.example.com"),
		Entry("wildcard apex", "example.com", "*.example.com"),
		Entry("wildcard subdomain", "example.com", "*.api.example.com"),
		Entry("trailing dot on the zone", "example.com.", "api.example.com"),
		Entry("case differences", "Example.COM", "API.example.com"),
	)

	DescribeTable("rejected",
		func(zone, domain string) {
			err := wafcdk.ValidateZoneCompatibility(zone, domain)
			Expect(err).To(MatchError(wafcdk.ErrZoneDomainMismatch))
			Expect(err.Error()).To(ContainSubstring(domain))
			Expect(err.Error()).To(ContainSubstring(zone))
		},
		Entry("unrelated zone", "different.com", "api.example.com"),
		Entry("suffix without a label boundary", "example.com", "badexample.com"),
		Entry("zone below the domain", "api.example.com", "example.com"),
	)
})

var _ = Describe("resolve", func() {
	It("should resolve to nothing when nothing is configured", func() {
		res, err := wafcdk.Resolve(wafcdk.Inputs{})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Domain).To(BeNil())
		Expect(res.Certificate).To(Equal(wafcdk.CertificateNone))
		Expect(res.CreateDNSRecords).To(BeFalse())
		Expect(res.Advisories).To(BeEmpty())
	})

	It("should generate a certificate and request records for a domain with a zone", func() {
		res, err := wafcdk.Resolve(wafcdk.Inputs{
			Domain:   jsii.String("example.com"),
			ZoneName: jsii.String("example.com"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(*res.Domain).To(Equal("example.com"))
		Expect(res.Certificate).To(Equal(wafcdk.CertificateGenerated))
		Expect(res.CreateDNSRecords).To(BeTrue())
	})

	It("should reuse a provided certificate and advise about coverage", func() {
		res, err := wafcdk.Resolve(wafcdk.Inputs{
			Domain:         jsii.String("api.example.com"),
			ZoneName:       jsii.String("example.com"),
			CertificateArn: jsii.String("arn:aws:acm:us-east-1:111111111111:certificate/abc"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Certificate).To(Equal(wafcdk.CertificateProvided))
		Expect(res.CreateDNSRecords).To(BeTrue())
		Expect(res.Advisories).To(HaveLen(1))
		Expect(res.Advisories[0]).To(ContainSubstring("cannot be verified"))
	})

	It("should defer wildcard coverage verification to deployment", func() {
		res, err := wafcdk.Resolve(wafcdk.Inputs{
			Domain:         jsii.String("*.example.com"),
			ZoneName:       jsii.String("example.com"),
			CertificateArn: jsii.String("arn:aws:acm:us-east-1:111111111111:certificate/abc"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Advisories).To(HaveLen(1))
		Expect(res.Advisories[0]).To(ContainSubstring("deferred to deployment"))
	})

	It("should require a hosted zone for any domain", func() {
		_, err := wafcdk.Resolve(wafcdk.Inputs{Domain: jsii.String("api.example.com")})
		Expect(err).To(MatchError(wafcdk.ErrHostedZoneRequired))
		Expect(err.Error()).To(ContainSubstring("api.example.com"))
	})

	// the zone-presence check runs before format validation, a malformed
	// domain without a zone reports the missing zone first.
	It("should report the missing zone before the malformed domain", func() {
		_, err := wafcdk.Resolve(wafcdk.Inputs{Domain: jsii.String("*.*.example.com")})
		Expect(err).To(MatchError(wafcdk.ErrHostedZoneRequired))
		Expect(err).ToNot(MatchError(wafcdk.ErrInvalidDomainFormat))
	})

	It("should reject a malformed domain once a zone is present", func() {
		_, err := wafcdk.Resolve(wafcdk.Inputs{
			Domain:   jsii.String("*.*.example.com"),
			ZoneName: jsii.String("example.com"),
		})
		Expect(err).To(MatchError(wafcdk.ErrInvalidDomainFormat))
		Expect(err.Error()).To(ContainSubstring("multiple wildcards"))
	})

	It("should reject a domain outside the zone", func() {
		_, err := wafcdk.Resolve(wafcdk.Inputs{
			Domain:   jsii.String("api.example.com"),
			ZoneName: jsii.String("different.com"),
		})
		Expect(err).To(MatchError(wafcdk.ErrZoneDomainMismatch))
	})

	It("should reject a certificate outside the mandated region", func() {
		_, err := wafcdk.Resolve(wafcdk.Inputs{
			Domain:         jsii.String("api.example.com"),
			ZoneName:       jsii.String("example.com"),
			CertificateArn: jsii.String("arn:aws:acm:us-west-2:111111111111:certificate/abc"),
		})
		Expect(err).To(MatchError(wafcdk.ErrCertificateRegionMismatch))
		Expect(err.Error()).To(ContainSubstring("us-east-1"))
	})

	It("should ignore a certificate without a domain, with an advisory", func() {
		res, err := wafcdk.Resolve(wafcdk.Inputs{
			CertificateArn: jsii.String("arn:aws:acm:us-east-1:111111111111:certificate/abc"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Certificate).To(Equal(wafcdk.CertificateNone))
		Expect(res.Advisories).To(HaveLen(1))
		Expect(res.Advisories[0]).To(ContainSubstring("certificate is ignored"))
	})

	It("should skip records for a zone without a domain, with an advisory", func() {
		res, err := wafcdk.Resolve(wafcdk.Inputs{ZoneName: jsii.String("example.com")})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.CreateDNSRecords).To(BeFalse())
		Expect(res.Advisories).To(HaveLen(1))
		Expect(res.Advisories[0]).To(ContainSubstring("no DNS records"))
	})
})

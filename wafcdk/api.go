package wafcdk

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigatewayv2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awswafv2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Props configures WithProtectedHttpApi. Everything except HttpApi is
// optional.
type Props struct {
	// HttpApi is the existing HTTP API the distribution fronts.
	HttpApi awsapigatewayv2.IHttpApi
	// Domain serves the distribution on a custom domain. Requires HostedZone.
	Domain *string
	// Certificate binds a caller-owned viewer certificate instead of
	// generating one. It must be imported by ARN and live in
	// CertificateRegion. Ignored (with a warning) when Domain is not set.
	Certificate awscertificatemanager.ICertificate
	// HostedZone holds the DNS records for Domain. Without Domain no records
	// are created and a warning is emitted.
	HostedZone awsroute53.IHostedZone
	// Rules replace the default managed rule groups when provided. They are
	// used verbatim: ordering is preserved and priorities are the caller's
	// responsibility.
	Rules *[]*awswafv2.CfnWebACL_RuleProperty
}

// ProtectedHttpApi gives access to the resources that front the HTTP API.
type ProtectedHttpApi interface {
	// Distribution is the CloudFront distribution serving the API.
	Distribution() awscloudfront.Distribution
	// WebACL is the WAFv2 ACL attached to the distribution.
	WebACL() awswafv2.CfnWebACL
	// SecretHeaderValue is the per-instance origin-verification token sent
	// in the SecretHeaderName header on every origin request.
	SecretHeaderValue() *string
	// CustomDomain is the effective custom domain, nil when none is bound.
	CustomDomain() *string
	// Certificate is the effective viewer certificate, nil when none is bound.
	Certificate() awscertificatemanager.ICertificate
	// AliasRecord is the A record pointing the domain at the distribution,
	// nil when no DNS records were requested.
	AliasRecord() awsroute53.ARecord
	// AaaaRecord is the IPv6 counterpart of AliasRecord.
	AaaaRecord() awsroute53.AaaaRecord
	// Resolution is the validated configuration the resources were built from.
	Resolution() Resolution
}

type protectedHttpApi struct {
	distribution awscloudfront.Distribution
	webACL       awswafv2.CfnWebACL
	secret       *string
	certificate  awscertificatemanager.ICertificate
	aliasRecord  awsroute53.ARecord
	aaaaRecord   awsroute53.AaaaRecord
	resolution   Resolution
}

// WithProtectedHttpApi fronts the HTTP API in props with a CloudFront
// distribution carrying a CLOUDFRONT-scoped WAFv2 ACL. The distribution adds
// the SecretHeaderName header to every origin request so the backend can
// reject traffic that bypasses the edge.
//
// Configuration is validated before any resource is defined and the whole
// construct panics on the first failure. Note that CLOUDFRONT-scoped ACLs
// only deploy from us-east-1 stacks.
func WithProtectedHttpApi(
	scope constructs.Construct, name ScopeName, cfg Config, props Props,
) ProtectedHttpApi {
	scope = name.ChildScope(scope)

	if props.HttpApi == nil {
		panic("wafcdk: props.HttpApi is required")
	}

	inputs := Inputs{Domain: props.Domain}
	if props.Certificate != nil {
		inputs.CertificateArn = props.Certificate.CertificateArn()
	}

	if props.HostedZone != nil {
		inputs.ZoneName = props.HostedZone.ZoneName()
	}

	res, err := Resolve(inputs)
	if err != nil {
		panic(fmt.Errorf("wafcdk: %w", err))
	}

	for _, advisory := range res.Advisories {
		warnf(scope, "%s", advisory)
	}

	con := &protectedHttpApi{
		resolution: res,
		secret:     NewSecretHeaderValue(),
		webACL:     newWebACL(scope, cfg, props.Rules),
	}

	switch res.Certificate {
	case CertificateProvided:
		con.certificate = props.Certificate
	case CertificateGenerated:
		infof(scope, "generating a dns-validated certificate for %q in %s", *res.Domain, CertificateRegion)

		con.certificate, err = generateCertificate(scope, *res.Domain, props.HostedZone)
		if err != nil {
			panic(fmt.Errorf("wafcdk: %w", err))
		}
	case CertificateNone:
	}

	con.distribution = newDistribution(scope, cfg, props.HttpApi, con)

	if res.CreateDNSRecords {
		con.aliasRecord, con.aaaaRecord, err = newAliasRecords(
			scope, *res.Domain, props.HostedZone, con.distribution)
		if err != nil {
			panic(fmt.Errorf("wafcdk: %w", err))
		}
	}

	return con
}

func (p *protectedHttpApi) Distribution() awscloudfront.Distribution { return p.distribution }
func (p *protectedHttpApi) WebACL() awswafv2.CfnWebACL               { return p.webACL }
func (p *protectedHttpApi) SecretHeaderValue() *string               { return p.secret }
func (p *protectedHttpApi) CustomDomain() *string                    { return p.resolution.Domain }
func (p *protectedHttpApi) AliasRecord() awsroute53.ARecord          { return p.aliasRecord }
func (p *protectedHttpApi) AaaaRecord() awsroute53.AaaaRecord        { return p.aaaaRecord }
func (p *protectedHttpApi) Resolution() Resolution                   { return p.resolution }

func (p *protectedHttpApi) Certificate() awscertificatemanager.ICertificate {
	return p.certificate
}

// newWebACL defines the CLOUDFRONT-scoped ACL with a default-allow action,
// leaving the verdict to the configured rules.
func newWebACL(
	scope constructs.Construct, cfg Config, rules *[]*awswafv2.CfnWebACL_RuleProperty,
) awswafv2.CfnWebACL {
	return awswafv2.NewCfnWebACL(scope, jsii.String("WebAcl"), &awswafv2.CfnWebACLProps{
		Scope:         jsii.String("CLOUDFRONT"),
		DefaultAction: &awswafv2.CfnWebACL_DefaultActionProperty{Allow: &map[string]any{}},
		Rules:         resolveRules(rules),
		VisibilityConfig: &awswafv2.CfnWebACL_VisibilityConfigProperty{
			CloudWatchMetricsEnabled: jsii.Bool(true),
			MetricName:               cfg.WebACLMetricName(),
			SampledRequestsEnabled:   jsii.Bool(true),
		},
	})
}

// newDistribution fronts the API's endpoint host with caching disabled: the
// distribution exists for WAF inspection, TLS and the origin-verification
// header, not as a cache.
func newDistribution(
	scope constructs.Construct, cfg Config, api awsapigatewayv2.IHttpApi, con *protectedHttpApi,
) awscloudfront.Distribution {
	// the endpoint is "https://<id>.execute-api.<region>.amazonaws.com", the
	// origin needs just the host part.
	originHost := awscdk.Fn_Select(jsii.Number(2),
		awscdk.Fn_Split(jsii.String("/"), api.ApiEndpoint(), nil))

	props := &awscloudfront.DistributionProps{
		Comment: jsii.String("WAF-protected distribution fronting an HTTP API"),
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin: awscloudfrontorigins.NewHttpOrigin(originHost, &awscloudfrontorigins.HttpOriginProps{
				ProtocolPolicy:   awscloudfront.OriginProtocolPolicy_HTTPS_ONLY,
				ReadTimeout:      cfg.OriginReadTimeout(),
				KeepaliveTimeout: cfg.OriginKeepaliveTimeout(),
				CustomHeaders:    &map[string]*string{SecretHeaderName: con.secret},
			}),
			AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_ALL(),
			CachePolicy:          awscloudfront.CachePolicy_CACHING_DISABLED(),
			OriginRequestPolicy:  awscloudfront.OriginRequestPolicy_ALL_VIEWER_EXCEPT_HOST_HEADER(),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		HttpVersion: cfg.DistributionHttpVersion(),
		PriceClass:  cfg.DistributionPriceClass(),
		WebAclId:    con.webACL.AttrArn(),
	}

	if con.resolution.Domain != nil {
		props.DomainNames = &[]*string{con.resolution.Domain}
		props.Certificate = con.certificate
		props.MinimumProtocolVersion = cfg.DistributionMinimumTLSVersion()
	}

	return awscloudfront.NewDistribution(scope, jsii.String("Distribution"), props)
}

// generateCertificate defines a dns-validated certificate pinned to
// CertificateRegion, independent of the stack's own region. Failures from
// the underlying resource definition are wrapped, not retried: transient
// issuance problems are the deployment pipeline's to handle.
func generateCertificate(
	scope constructs.Construct, domain string, zone awsroute53.IHostedZone,
) (cert awscertificatemanager.ICertificate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: dns-validated certificate for %q: %v", ErrCertificateGeneration, domain, r)
		}
	}()

	cert = awscertificatemanager.NewDnsValidatedCertificate(scope, jsii.String("Certificate"),
		&awscertificatemanager.DnsValidatedCertificateProps{
			DomainName: jsii.String(domain),
			HostedZone: zone,
			Region:     jsii.String(CertificateRegion),
			Validation: awscertificatemanager.CertificateValidation_FromDns(zone),
		})

	return cert, nil
}

// newAliasRecords points the domain at the distribution over both IPv4 and
// IPv6.
func newAliasRecords(
	scope constructs.Construct,
	domain string,
	zone awsroute53.IHostedZone,
	dist awscloudfront.Distribution,
) (a awsroute53.ARecord, aaaa awsroute53.AaaaRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, aaaa = nil, nil
			err = fmt.Errorf("%w: alias records for %q: %v", ErrDNSRecordCreation, domain, r)
		}
	}()

	target := awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(dist))

	a = awsroute53.NewARecord(scope, jsii.String("AliasRecord"), &awsroute53.ARecordProps{
		Zone:       zone,
		RecordName: jsii.String(domain),
		Target:     target,
	})

	aaaa = awsroute53.NewAaaaRecord(scope, jsii.String("AliasRecordIpv6"), &awsroute53.AaaaRecordProps{
		Zone:       zone,
		RecordName: jsii.String(domain),
		Target:     target,
	})

	return a, aaaa, nil
}

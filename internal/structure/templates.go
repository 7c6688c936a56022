package structure

import "regexp"

// sectionTemplate describes one expected section of a policy type.
// Keywords drive section detection; required elements are matched with
// phrase variations (spacing, hyphenation, plural forms).
type sectionTemplate struct {
	Name             string
	Keywords         []string
	RequiredElements []string
}

// policyTemplate is the section model for one policy type.
type policyTemplate struct {
	Type     string
	Name     string
	Keywords []string
	Sections []sectionTemplate
}

var policyTemplates = []policyTemplate{
	{
		Type: "privacy_policy",
		Name: "Privacy Policy",
		Keywords: []string{
			"privacy", "personal data", "personal information", "data protection",
			"collect", "processing",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Data Collection",
				Keywords:         []string{"collect", "information", "sources", "categories"},
				RequiredElements: []string{"personal information", "collection methods"},
			},
			{
				Name:             "Data Use",
				Keywords:         []string{"use", "purpose", "processing"},
				RequiredElements: []string{"processing purposes", "legal basis"},
			},
			{
				Name:             "Data Sharing",
				Keywords:         []string{"share", "disclose", "third party", "partners"},
				RequiredElements: []string{"third parties", "service providers"},
			},
			{
				Name:             "User Rights",
				Keywords:         []string{"rights", "access", "delete", "request"},
				RequiredElements: []string{"access request", "opt out"},
			},
			{
				Name:             "Data Retention",
				Keywords:         []string{"retain", "retention", "period"},
				RequiredElements: []string{"retention period"},
			},
		},
	},
	{
		Type: "human_rights_policy",
		Name: "Human Rights Policy",
		Keywords: []string{
			"human rights", "labor", "dignity", "forced labor", "discrimination",
			"working conditions",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Commitment",
				Keywords:         []string{"commitment", "respect", "principles"},
				RequiredElements: []string{"human rights", "international standards"},
			},
			{
				Name:             "Labor Standards",
				Keywords:         []string{"labor", "wages", "working hours", "child labor"},
				RequiredElements: []string{"forced labor", "child labor", "fair wages"},
			},
			{
				Name:             "Non-Discrimination",
				Keywords:         []string{"discrimination", "harassment", "equal"},
				RequiredElements: []string{"equal opportunity", "harassment"},
			},
			{
				Name:             "Grievance Mechanism",
				Keywords:         []string{"grievance", "report", "remedy"},
				RequiredElements: []string{"grievance mechanism", "remediation"},
			},
		},
	},
	{
		Type: "terms_of_service",
		Name: "Terms of Service",
		Keywords: []string{
			"terms of service", "terms and conditions", "agreement", "liability",
			"user", "account",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Acceptance",
				Keywords:         []string{"acceptance", "agree", "binding"},
				RequiredElements: []string{"agree to these terms"},
			},
			{
				Name:             "User Obligations",
				Keywords:         []string{"obligations", "responsible", "account", "conduct"},
				RequiredElements: []string{"user responsibilities", "prohibited conduct"},
			},
			{
				Name:             "Limitation of Liability",
				Keywords:         []string{"liability", "warranty", "disclaimer", "damages"},
				RequiredElements: []string{"limitation of liability", "disclaimer"},
			},
			{
				Name:             "Termination",
				Keywords:         []string{"terminate", "suspend", "cancellation"},
				RequiredElements: []string{"termination"},
			},
		},
	},
	{
		Type: "acceptable_use_policy",
		Name: "Acceptable Use Policy",
		Keywords: []string{
			"acceptable use", "prohibited", "misuse", "abuse", "network",
			"resources",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Permitted Use",
				Keywords:         []string{"permitted", "authorized", "business purposes"},
				RequiredElements: []string{"authorized use"},
			},
			{
				Name:             "Prohibited Activities",
				Keywords:         []string{"prohibited", "forbidden", "illegal", "unauthorized"},
				RequiredElements: []string{"prohibited activities", "unauthorized access"},
			},
			{
				Name:             "Enforcement",
				Keywords:         []string{"enforcement", "violation", "disciplinary"},
				RequiredElements: []string{"violations", "disciplinary action"},
			},
		},
	},
	{
		Type: "cookie_policy",
		Name: "Cookie Policy",
		Keywords: []string{
			"cookie", "tracking", "browser", "analytics", "advertising",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Cookie Types",
				Keywords:         []string{"essential", "functional", "analytics", "advertising"},
				RequiredElements: []string{"essential cookies", "analytics cookies"},
			},
			{
				Name:             "Cookie Management",
				Keywords:         []string{"manage", "disable", "browser settings", "consent"},
				RequiredElements: []string{"browser settings", "cookie preferences"},
			},
			{
				Name:             "Third-Party Cookies",
				Keywords:         []string{"third party", "partners", "advertising"},
				RequiredElements: []string{"third party cookies"},
			},
		},
	},
	{
		Type: "data_processing_agreement",
		Name: "Data Processing Agreement",
		Keywords: []string{
			"data processing agreement", "processor", "controller", "sub-processor",
			"processing instructions",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Processing Details",
				Keywords:         []string{"subject matter", "duration", "nature", "purpose"},
				RequiredElements: []string{"processing instructions", "categories of data"},
			},
			{
				Name:             "Sub-Processors",
				Keywords:         []string{"sub-processor", "subcontract", "approval"},
				RequiredElements: []string{"sub processors", "prior authorization"},
			},
			{
				Name:             "Security Measures",
				Keywords:         []string{"security", "technical", "organizational"},
				RequiredElements: []string{"technical measures", "organizational measures"},
			},
		},
	},
	{
		Type: "accessibility_policy",
		Name: "Accessibility Policy",
		Keywords: []string{
			"accessibility", "wcag", "disabilities", "assistive", "accommodation",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Standards",
				Keywords:         []string{"wcag", "standards", "conformance", "level"},
				RequiredElements: []string{"wcag", "conformance level"},
			},
			{
				Name:             "Accommodations",
				Keywords:         []string{"accommodation", "assistive", "alternative"},
				RequiredElements: []string{"assistive technology"},
			},
			{
				Name:             "Feedback",
				Keywords:         []string{"feedback", "contact", "report"},
				RequiredElements: []string{"contact information"},
			},
		},
	},
	{
		Type: "security_policy",
		Name: "Information Security Policy",
		Keywords: []string{
			"security", "confidentiality", "integrity", "availability",
			"access control", "incident",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Access Control",
				Keywords:         []string{"access", "authentication", "authorization", "least privilege"},
				RequiredElements: []string{"access control", "authentication"},
			},
			{
				Name:             "Incident Response",
				Keywords:         []string{"incident", "response", "breach", "report"},
				RequiredElements: []string{"incident response", "reporting procedures"},
			},
			{
				Name:             "Data Protection",
				Keywords:         []string{"encryption", "classification", "handling"},
				RequiredElements: []string{"encryption", "data classification"},
			},
		},
	},
	{
		Type: "refund_policy",
		Name: "Refund Policy",
		Keywords: []string{
			"refund", "return", "exchange", "reimbursement", "cancellation",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Eligibility",
				Keywords:         []string{"eligible", "conditions", "within", "days"},
				RequiredElements: []string{"refund eligibility", "return window"},
			},
			{
				Name:             "Process",
				Keywords:         []string{"process", "request", "submit", "receipt"},
				RequiredElements: []string{"refund process"},
			},
			{
				Name:             "Exceptions",
				Keywords:         []string{"exceptions", "non-refundable", "final sale"},
				RequiredElements: []string{"non refundable"},
			},
		},
	},
	{
		Type: "environmental_policy",
		Name: "Environmental Policy",
		Keywords: []string{
			"environmental", "sustainability", "emissions", "waste", "climate",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Commitments",
				Keywords:         []string{"commitment", "reduce", "targets"},
				RequiredElements: []string{"emission targets", "sustainability"},
			},
			{
				Name:             "Waste Management",
				Keywords:         []string{"waste", "recycling", "disposal"},
				RequiredElements: []string{"waste reduction", "recycling"},
			},
			{
				Name:             "Compliance",
				Keywords:         []string{"compliance", "regulations", "reporting"},
				RequiredElements: []string{"environmental regulations"},
			},
		},
	},
	{
		Type: "code_of_conduct",
		Name: "Code of Conduct",
		Keywords: []string{
			"code of conduct", "ethics", "integrity", "conflict of interest",
			"behavior",
		},
		Sections: []sectionTemplate{
			{
				Name:             "Ethical Standards",
				Keywords:         []string{"ethics", "integrity", "honesty"},
				RequiredElements: []string{"ethical standards"},
			},
			{
				Name:             "Conflicts of Interest",
				Keywords:         []string{"conflict", "interest", "disclosure"},
				RequiredElements: []string{"conflict of interest", "disclosure"},
			},
			{
				Name:             "Reporting Violations",
				Keywords:         []string{"report", "violation", "retaliation"},
				RequiredElements: []string{"reporting channels", "non retaliation"},
			},
		},
	},
}

// citationTemplate captures framework-specific citation patterns used
// purely as presence signals, independent of the rule catalog.
type citationTemplate struct {
	Framework string
	Mention   *regexp.Regexp
	Citations *regexp.Regexp
	Literals  []string
}

var citationTemplates = []citationTemplate{
	{
		Framework: "GDPR",
		Mention:   regexp.MustCompile(`(?i)\bgdpr\b|general data protection regulation`),
		Citations: regexp.MustCompile(`(?i)\barticle\s+\d{1,2}\b`),
	},
	{
		Framework: "CCPA",
		Mention:   regexp.MustCompile(`(?i)\bccpa\b|california consumer privacy act`),
		Citations: regexp.MustCompile(`(?i)\bsection\s+1798\.\d+\b`),
	},
	{
		Framework: "HIPAA",
		Mention:   regexp.MustCompile(`(?i)\bhipaa\b`),
		Literals: []string{
			"administrative safeguards", "physical safeguards",
			"technical safeguards", "privacy rule", "security rule",
		},
	},
	{
		Framework: "SOX",
		Mention:   regexp.MustCompile(`(?i)\bsarbanes.oxley\b|\bsox\b`),
		Citations: regexp.MustCompile(`(?i)\bsection\s+(302|404|409|802|906)\b`),
	},
	{
		Framework: "PCI-DSS",
		Mention:   regexp.MustCompile(`(?i)\bpci.dss\b|payment card industry`),
		Citations: regexp.MustCompile(`(?i)\brequirement\s+\d{1,2}(\.\d+)?\b`),
	},
}

package classifier

import "regexp"

// essentialSection is one of the privacy sections a policy document is
// expected to cover. A section counts as present when any of its
// patterns appears in the lowercased text.
type essentialSection struct {
	Name     string
	Patterns []string
}

var essentialSections = []essentialSection{
	{
		Name: "data_collection",
		Patterns: []string{
			"information we collect", "data we collect", "we collect",
			"collection of personal", "personal information", "personal data",
		},
	},
	{
		Name: "user_rights",
		Patterns: []string{
			"your rights", "right to access", "right to delete",
			"data subject rights", "you may request", "opt out", "opt-out",
		},
	},
	{
		Name: "third_party_sharing",
		Patterns: []string{
			"third party", "third-party", "third parties", "share your",
			"disclose", "service providers",
		},
	},
	{
		Name: "data_retention",
		Patterns: []string{
			"retain", "retention", "how long", "storage period", "keep your",
		},
	},
	{
		Name: "security",
		Patterns: []string{
			"security", "safeguard", "protect your", "encryption",
			"security measures",
		},
	},
	{
		Name: "legal_compliance",
		Patterns: []string{
			"gdpr", "ccpa", "hipaa", "applicable law", "compliance",
			"legal obligation", "regulation",
		},
	},
}

// privacyTier assigns a fixed point value to each matched term. The
// resulting total is deliberately uncapped; it feeds thresholding only.
type privacyTier struct {
	Points int
	Terms  []string
}

var privacyTiers = []privacyTier{
	{Points: 30, Terms: []string{
		"privacy policy", "privacy notice", "privacy statement",
		"data protection policy", "cookie policy",
	}},
	{Points: 20, Terms: []string{
		"personal data", "personal information", "data processing",
		"data controller", "data processor", "data protection",
	}},
	{Points: 15, Terms: []string{
		"gdpr", "ccpa", "hipaa", "legal basis", "regulatory",
		"applicable law", "compliance",
	}},
	{Points: 12, Terms: []string{
		"your rights", "right to access", "right to erasure", "opt out",
		"data subject", "consent",
	}},
	{Points: 10, Terms: []string{
		"encryption", "retention", "safeguards", "security measures",
		"access controls", "data security",
	}},
}

const structuralPhrasePoints = 12

var structuralPhrases = []string{
	"information we collect", "how we use", "how we share", "your choices",
	"contact us", "changes to this policy", "effective date", "last updated",
	"table of contents", "scope", "definitions", "purpose",
	"policy statement", "responsibilities", "enforcement", "exceptions",
	"related policies", "revision history",
}

const qualityIndicatorPoints = 5

var qualityIndicators = []string{
	"shall", "must", "required", "prohibited", "in accordance with",
	"pursuant to", "including but not limited to", "reserves the right",
}

// strongPolicyIndicators short-circuit validation: any single match
// accepts the document outright.
var strongPolicyIndicators = []string{
	"privacy policy", "privacy notice", "gdpr", "ccpa",
	"code of conduct", "acceptable use policy", "terms of service",
	"terms and conditions", "cookie policy", "data protection policy",
	"information security policy", "employee handbook",
	"anti-harassment policy", "whistleblower policy",
	"data processing agreement", "refund policy", "security policy",
	"accessibility statement", "human rights policy", "environmental policy",
}

// nonPolicyCategory accumulates strong-pattern hits; two or more hits
// in one category reject the document.
type nonPolicyCategory struct {
	Type     string
	Patterns []string
}

var nonPolicyCategories = []nonPolicyCategory{
	{
		Type: "resume",
		Patterns: []string{
			"work experience", "work history", "professional experience",
			"career objective", "employment history", "references available",
			"curriculum vitae", "skills and qualifications", "resume",
			"education:",
		},
	},
	{
		Type: "personal_document",
		Patterns: []string{
			"dear hiring manager", "cover letter", "i am writing to",
			"sincerely yours", "my passion for", "i believe i would",
		},
	},
	{
		Type: "academic_paper",
		Patterns: []string{
			"abstract", "literature review", "methodology", "hypothesis",
			"et al", "peer review", "research question", "works cited",
		},
	},
	{
		Type: "marketing_material",
		Patterns: []string{
			"buy now", "limited time offer", "special offer", "discount",
			"best price", "subscribe today", "free trial", "don't miss",
		},
	},
	{
		Type: "financial_document",
		Patterns: []string{
			"balance sheet", "income statement", "cash flow",
			"quarterly earnings", "net revenue", "profit and loss",
			"shareholders equity", "fiscal year ended",
		},
	},
}

// PDF uploads get a permissive pass; only clearly non-business
// documents are turned away.
var pdfNonBusinessPatterns = []string{
	"resume", "curriculum vitae", "cover letter", "career objective",
	"work experience", "education history", "references available",
	"dear hiring manager", "job application",
}

var pdfStrongResumePatterns = []string{
	"professional experience", "career objective",
	"references available upon request", "seeking a position",
}

const genericPolicyPoints = 8

var genericPolicyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)this (policy|agreement|notice) (applies|describes|governs|explains)`),
	regexp.MustCompile(`(?i)we (may|will|do not|do) (collect|use|share|process|disclose)`),
	regexp.MustCompile(`(?i)by (using|accessing) (our|this|the)`),
	regexp.MustCompile(`(?i)(users?|employees?|customers?|visitors?) (must|shall|may not|agree)`),
	regexp.MustCompile(`(?i)violations? of this (policy|agreement)`),
}

const structuralIndicatorPoints = 6

var structuralIndicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*\d+(\.\d+)*[.)]\s+\S`),
	regexp.MustCompile(`(?m)^#{1,6}\s+\S`),
	regexp.MustCompile(`(?m)^[A-Z][A-Z ]{5,}$`),
	regexp.MustCompile(`(?m)^\s*[-*•]\s+\S`),
}

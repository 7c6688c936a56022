package catalog

import "github.com/gapscan/gapscan/internal/models"

func industryBenchmarks() map[string]models.IndustryBenchmark {
	return map[string]models.IndustryBenchmark{
		"Technology":         {Average: 72, Median: 68, Top10: 91},
		"Healthcare":         {Average: 78, Median: 74, Top10: 94},
		"Financial Services": {Average: 81, Median: 77, Top10: 95},
		"Retail":             {Average: 65, Median: 61, Top10: 86},
		"Education":          {Average: 62, Median: 58, Top10: 84},
		"Government":         {Average: 75, Median: 71, Top10: 92},
		"Manufacturing":      {Average: 60, Median: 56, Top10: 82},
		"Default":            {Average: 68, Median: 64, Top10: 88},
	}
}

func defaultFrameworks() []models.Framework {
	return []models.Framework{
		{
			ID:           "GDPR",
			Name:         "General Data Protection Regulation",
			Jurisdiction: "European Union",
			Rules: []models.Rule{
				{
					ID:          "gdpr-lawful-basis",
					Title:       "Lawful Basis for Processing",
					Category:    "Data Processing",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Identify a lawful basis for each processing activity",
						"Document consent collection and withdrawal mechanisms",
						"Explain legitimate interest assessments where relied upon",
						"Describe processing purposes in specific terms",
					},
					Keywords: []string{
						"lawful basis", "consent", "legitimate interest",
						"processing", "purpose", "contract",
					},
				},
				{
					ID:          "gdpr-data-subject-rights",
					Title:       "Data Subject Rights",
					Category:    "User Rights",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Describe the right of access to personal data",
						"Describe the right to rectification of inaccurate data",
						"Describe the right to erasure and its conditions",
						"Describe the right to data portability",
						"Explain how to object to or restrict processing",
					},
					Keywords: []string{
						"right to access", "rectification", "erasure",
						"portability", "object", "restrict", "data subject",
					},
				},
				{
					ID:          "gdpr-international-transfers",
					Title:       "International Data Transfers",
					Category:    "Data Transfers",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Disclose transfers of personal data outside the EEA",
						"Name the safeguards applied to international transfers",
						"Reference standard contractual clauses or adequacy decisions",
					},
					Keywords: []string{
						"international transfer", "standard contractual clauses",
						"adequacy", "eea", "third country", "safeguards",
					},
				},
				{
					ID:          "gdpr-breach-notification",
					Title:       "Personal Data Breach Notification",
					Category:    "Incident Response",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Commit to notifying the supervisory authority within 72 hours",
						"Describe how affected individuals are informed of breaches",
						"Maintain a record of personal data breaches",
					},
					Keywords: []string{
						"breach", "notification", "72 hours",
						"supervisory authority", "incident",
					},
				},
				{
					ID:          "gdpr-dpo-accountability",
					Title:       "Accountability and Data Protection Officer",
					Category:    "Governance",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"Provide contact details for the data protection officer",
						"Maintain records of processing activities",
						"Conduct data protection impact assessments for high-risk processing",
					},
					Keywords: []string{
						"data protection officer", "dpo", "accountability",
						"records of processing", "impact assessment", "dpia",
					},
				},
				{
					ID:          "gdpr-retention",
					Title:       "Storage Limitation and Retention",
					Category:    "Data Retention",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"State retention periods or the criteria used to set them",
						"Describe deletion or anonymization at end of retention",
					},
					Keywords: []string{
						"retention", "storage limitation", "delete",
						"anonymize", "retention period",
					},
				},
			},
		},
		{
			ID:           "HIPAA",
			Name:         "Health Insurance Portability and Accountability Act",
			Jurisdiction: "United States",
			Rules: []models.Rule{
				{
					ID:          "hipaa-privacy-rule",
					Title:       "Privacy Rule Safeguards",
					Category:    "Privacy",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Describe permitted uses and disclosures of protected health information",
						"Apply the minimum necessary standard to disclosures",
						"Provide a notice of privacy practices",
					},
					Keywords: []string{
						"protected health information", "phi", "minimum necessary",
						"notice of privacy practices", "disclosure",
					},
				},
				{
					ID:          "hipaa-security-rule",
					Title:       "Security Rule Safeguards",
					Category:    "Security",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Describe administrative safeguards including workforce training",
						"Describe physical safeguards for systems holding health data",
						"Describe technical safeguards including encryption and access control",
						"Conduct periodic risk analysis of health data systems",
					},
					Keywords: []string{
						"administrative safeguards", "physical safeguards",
						"technical safeguards", "encryption", "access control",
						"risk analysis",
					},
				},
				{
					ID:          "hipaa-patient-rights",
					Title:       "Patient Access and Amendment Rights",
					Category:    "User Rights",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Describe the patient right to access medical records",
						"Describe the right to request amendment of records",
						"Provide an accounting of disclosures on request",
					},
					Keywords: []string{
						"access", "medical records", "amendment",
						"accounting of disclosures", "patient rights",
					},
				},
				{
					ID:          "hipaa-business-associates",
					Title:       "Business Associate Agreements",
					Category:    "Third Parties",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Require business associate agreements before sharing health data",
						"Describe obligations imposed on business associates",
					},
					Keywords: []string{
						"business associate", "agreement", "subcontractor",
						"covered entity", "baa",
					},
				},
				{
					ID:          "hipaa-breach-notification",
					Title:       "Breach Notification Rule",
					Category:    "Incident Response",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"Notify affected individuals of breaches without unreasonable delay",
						"Notify the Department of Health and Human Services of breaches",
					},
					Keywords: []string{
						"breach notification", "unsecured", "hhs",
						"60 days", "notify",
					},
				},
			},
		},
		{
			ID:           "SOX",
			Name:         "Sarbanes-Oxley Act",
			Jurisdiction: "United States",
			Rules: []models.Rule{
				{
					ID:          "sox-internal-controls",
					Title:       "Internal Control over Financial Reporting",
					Category:    "Financial Controls",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Establish internal controls over financial reporting",
						"Require management assessment of control effectiveness",
						"Document control activities and segregation of duties",
					},
					Keywords: []string{
						"internal control", "financial reporting", "section 404",
						"segregation of duties", "management assessment",
					},
				},
				{
					ID:          "sox-records-retention",
					Title:       "Records Retention and Integrity",
					Category:    "Data Retention",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Retain audit records and workpapers for the required period",
						"Prohibit destruction or falsification of records",
						"Protect the integrity of financial records",
					},
					Keywords: []string{
						"records retention", "audit", "workpapers",
						"destruction", "falsification", "integrity",
					},
				},
				{
					ID:          "sox-whistleblower",
					Title:       "Whistleblower Protection",
					Category:    "Governance",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Provide confidential channels for reporting accounting concerns",
						"Prohibit retaliation against employees who report misconduct",
					},
					Keywords: []string{
						"whistleblower", "retaliation", "confidential",
						"reporting", "misconduct", "complaint",
					},
				},
				{
					ID:          "sox-certification",
					Title:       "Executive Certification",
					Category:    "Governance",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"Require executive certification of financial statements",
						"Disclose material changes in financial condition",
					},
					Keywords: []string{
						"certification", "ceo", "cfo", "financial statements",
						"material", "disclosure",
					},
				},
			},
		},
		{
			ID:           "CCPA",
			Name:         "California Consumer Privacy Act",
			Jurisdiction: "California, United States",
			Rules: []models.Rule{
				{
					ID:          "ccpa-consumer-rights",
					Title:       "Consumer Rights Disclosures",
					Category:    "User Rights",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Describe the right to know what personal information is collected",
						"Describe the right to delete personal information",
						"Describe the right to opt out of the sale of personal information",
						"Describe the right to non-discrimination for exercising rights",
					},
					Keywords: []string{
						"right to know", "right to delete", "opt out",
						"do not sell", "non-discrimination", "consumer",
					},
				},
				{
					ID:          "ccpa-collection-notice",
					Title:       "Notice at Collection",
					Category:    "Data Processing",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"List the categories of personal information collected",
						"State the purposes for which categories are used",
						"Disclose categories of third parties receiving information",
					},
					Keywords: []string{
						"categories of personal information", "notice at collection",
						"purposes", "third parties", "sources",
					},
				},
				{
					ID:          "ccpa-request-handling",
					Title:       "Consumer Request Handling",
					Category:    "User Rights",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"Provide at least two methods for submitting consumer requests",
						"Respond to verifiable consumer requests within 45 days",
						"Describe how consumer identity is verified",
					},
					Keywords: []string{
						"verifiable consumer request", "45 days", "toll-free",
						"verify", "request", "methods",
					},
				},
			},
		},
		{
			ID:           "PCI-DSS",
			Name:         "Payment Card Industry Data Security Standard",
			Jurisdiction: "Global",
			Rules: []models.Rule{
				{
					ID:          "pci-cardholder-data",
					Title:       "Cardholder Data Protection",
					Category:    "Security",
					Criticality: models.CriticalityCritical,
					BenchmarkCriteria: []string{
						"Protect stored cardholder data with strong cryptography",
						"Never store sensitive authentication data after authorization",
						"Mask the primary account number when displayed",
					},
					Keywords: []string{
						"cardholder data", "encryption", "pan",
						"sensitive authentication data", "cryptography", "mask",
					},
				},
				{
					ID:          "pci-access-control",
					Title:       "Access Control Measures",
					Category:    "Security",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Restrict access to cardholder data by business need to know",
						"Assign a unique identifier to each person with computer access",
						"Use multi-factor authentication for remote access",
					},
					Keywords: []string{
						"need to know", "unique id", "multi-factor",
						"authentication", "restrict access",
					},
				},
				{
					ID:          "pci-monitoring",
					Title:       "Network Monitoring and Testing",
					Category:    "Security",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"Track and monitor all access to network resources and cardholder data",
						"Regularly test security systems and processes",
					},
					Keywords: []string{
						"monitor", "audit trail", "logging",
						"penetration test", "vulnerability scan",
					},
				},
			},
		},
		{
			ID:           "ISO27001",
			Name:         "ISO/IEC 27001 Information Security Management",
			Jurisdiction: "Global",
			Rules: []models.Rule{
				{
					ID:          "iso-isms",
					Title:       "Information Security Management System",
					Category:    "Governance",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Establish an information security management system",
						"Define an information security policy approved by management",
						"Assign information security roles and responsibilities",
					},
					Keywords: []string{
						"isms", "information security policy", "management",
						"roles", "responsibilities",
					},
				},
				{
					ID:          "iso-risk-management",
					Title:       "Risk Assessment and Treatment",
					Category:    "Risk Management",
					Criticality: models.CriticalityHigh,
					BenchmarkCriteria: []string{
						"Perform information security risk assessments at planned intervals",
						"Select and justify risk treatment options",
						"Maintain a statement of applicability",
					},
					Keywords: []string{
						"risk assessment", "risk treatment", "statement of applicability",
						"controls", "risk",
					},
				},
				{
					ID:          "iso-operations",
					Title:       "Operational Security Controls",
					Category:    "Security",
					Criticality: models.CriticalityMedium,
					BenchmarkCriteria: []string{
						"Document operating procedures for information processing",
						"Protect against malware and manage technical vulnerabilities",
						"Back up information and test restoration regularly",
					},
					Keywords: []string{
						"operating procedures", "malware", "vulnerability",
						"backup", "restoration",
					},
				},
				{
					ID:          "iso-awareness",
					Title:       "Security Awareness and Training",
					Category:    "Governance",
					Criticality: models.CriticalityLow,
					BenchmarkCriteria: []string{
						"Provide security awareness training to all personnel",
						"Communicate the consequences of policy violations",
					},
					Keywords: []string{
						"awareness", "training", "personnel",
						"violations", "disciplinary",
					},
				},
			},
		},
	}
}

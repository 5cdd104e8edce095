package reference

// Default returns the built-in reference tables. Every call builds a fresh
// value, so callers may hand it to tests or overlay a file on top of it.
func Default() *Data {
	return &Data{
		Industries:          defaultIndustries(),
		Roles:               defaultRoles(),
		HighTransferability: defaultHighTransferability(),
		Concepts:            defaultConcepts(),
		ActionVerbs:         defaultActionVerbs(),
		SoftSkills: []string{
			"communication", "leadership", "teamwork", "problem solving", "time management",
			"adaptability", "collaboration", "critical thinking", "negotiation",
			"stakeholder management", "customer service", "mentoring", "coaching",
			"presentation", "interpersonal skills", "organisation", "attention to detail",
			"decision making", "crisis management", "team leadership", "management",
			"supervision", "relationship building", "planning", "coordination",
			"public speaking", "people management",
		},
		TechnicalSkills: []string{
			"javascript", "typescript", "python", "java", "go", "c#", "c++", "php", "ruby",
			"react", "angular", "vue", "node.js", "html", "css", "sql", "postgresql", "mysql",
			"mongodb", "git", "docker", "kubernetes", "aws", "azure", "gcp", "linux", "ci/cd",
			"rest apis", "graphql", "terraform", "excel", "power bi", "tableau", "machine learning",
			"data analysis", "testing", "software development", "web development",
		},
		SkillAliases: map[string]string{
			"node":                "node.js",
			"nodejs":              "node.js",
			"js":                  "javascript",
			"ts":                  "typescript",
			"golang":              "go",
			"k8s":                 "kubernetes",
			"postgres":            "postgresql",
			"ms excel":            "excel",
			"microsoft excel":     "excel",
			"reactjs":             "react",
			"react.js":            "react",
			"vue.js":              "vue",
			"ci cd":               "ci/cd",
			"amazon web services": "aws",
			"team work":           "teamwork",
			"problem-solving":     "problem solving",
			"h&s":                 "health and safety",
			"health & safety":     "health and safety",
			"rest api":            "rest apis",
			"restful apis":        "rest apis",
			"people management":   "management",
			"organization":        "organisation",
		},
		Certifications: []string{
			"nebosh", "iosh", "pmp", "prince2", "cissp", "ccna", "comptia", "aws certified",
			"azure certified", "cpa", "acca", "cima", "cipd", "cscs", "smsts", "sssts", "itil",
			"six sigma", "scrum master", "csm", "qts", "pgce", "nmc registration", "cfa",
			"gas safe", "ifsm", "first aid at work",
		},
		TransferableSkills: []string{
			"leadership", "communication", "risk assessment", "problem solving",
			"project management", "stakeholder management", "teamwork", "decision making",
			"crisis management", "training and development", "customer service", "planning",
			"negotiation", "time management", "management", "team leadership", "report writing",
		},
		LeadershipKeywords: []string{
			"lead", "leader", "manager", "head", "director", "supervisor", "command",
			"chief", "principal", "commander", "team leader", "management", "leadership",
		},
		GenericSkills: []string{
			"communication", "teamwork", "problem solving", "organisation", "time management",
		},
		StopWords: defaultStopWords(),
	}
}

func defaultIndustries() map[string]Industry {
	return map[string]Industry{
		"technology": {
			Keywords: []string{
				"software", "developer", "programming", "computer science", "javascript", "python",
				"react", "node", "api", "cloud", "database", "devops", "web development", "git",
				"engineer",
			},
			Skills: []string{
				"javascript", "typescript", "python", "java", "react", "node.js", "sql", "git",
				"docker", "kubernetes", "aws", "rest apis", "testing", "agile",
				"software development", "html", "css", "linux", "ci/cd", "data analysis",
				"machine learning", "problem solving",
			},
			TransferableFrom: []string{"engineering", "finance"},
		},
		"healthcare": {
			Keywords: []string{
				"patient", "patients", "clinical", "nursing", "nurse", "hospital", "healthcare",
				"nhs", "care", "medical", "medication", "ward", "diagnosis", "treatment",
			},
			Skills: []string{
				"patient care", "clinical assessment", "medication administration",
				"infection control", "safeguarding", "first aid", "care planning",
				"record keeping", "triage", "phlebotomy", "communication",
			},
			TransferableFrom: []string{"emergency-services", "education"},
		},
		"finance": {
			Keywords: []string{
				"finance", "financial", "accounting", "accountant", "audit", "budget", "tax",
				"ledger", "reconciliation", "investment", "banking", "forecasting", "reporting",
			},
			Skills: []string{
				"financial reporting", "budgeting", "forecasting", "accounting", "auditing", "excel",
				"financial analysis", "tax", "reconciliation", "risk management", "payroll", "sap",
			},
			TransferableFrom: []string{"technology", "legal"},
		},
		"education": {
			Keywords: []string{
				"teacher", "teaching", "school", "students", "curriculum", "lesson", "classroom",
				"pupils", "education", "tutor", "qts", "pgce", "learning",
			},
			Skills: []string{
				"lesson planning", "classroom management", "curriculum development", "safeguarding",
				"assessment", "mentoring", "differentiation", "behaviour management", "tutoring",
				"communication",
			},
			TransferableFrom: []string{"healthcare", "human-resources"},
		},
		"engineering": {
			Keywords: []string{
				"engineering", "mechanical", "electrical", "design", "cad", "autocad", "solidworks",
				"manufacturing", "maintenance", "technical drawings", "commissioning", "civil",
				"engineer",
			},
			Skills: []string{
				"autocad", "solidworks", "cad", "project management", "technical drawing",
				"root cause analysis", "maintenance", "commissioning", "quality assurance", "lean",
				"risk assessment", "problem solving",
			},
			TransferableFrom:   []string{"manufacturing", "construction", "technology"},
			IncompatibleFields: []string{"hospitality", "retail"},
		},
		"construction": {
			Keywords: []string{
				"construction", "site", "contractor", "civil", "cscs", "groundworks", "surveying",
				"quantity surveyor", "site manager", "scaffolding", "building", "subcontractors",
			},
			Skills: []string{
				"site management", "health and safety", "project management", "building regulations",
				"surveying", "estimating", "scheduling", "risk assessment", "quality control",
				"subcontractor management",
			},
			TransferableFrom: []string{"engineering", "building-safety", "manufacturing"},
		},
		"building-safety": {
			Keywords: []string{
				"building safety", "fire safety", "building regulations", "fire risk assessment",
				"nebosh", "safety case", "cladding", "higher-risk buildings", "compliance",
				"fire strategy", "building", "inspection",
			},
			Skills: []string{
				"building safety", "fire safety", "fire risk assessment", "risk assessment",
				"building regulations", "health and safety", "compliance", "safety management",
				"incident investigation", "stakeholder management", "regulatory compliance",
				"fire strategy", "report writing",
			},
			TransferableFrom:   []string{"emergency-services", "construction", "engineering"},
			IncompatibleFields: []string{"hospitality", "retail", "marketing"},
		},
		"emergency-services": {
			Keywords: []string{
				"fire", "firefighter", "fire service", "incident command", "emergency", "rescue",
				"fire safety", "watch manager", "crew manager", "paramedic", "police",
				"emergency response",
			},
			Skills: []string{
				"incident command", "emergency response", "fire safety", "first aid",
				"crisis management", "risk assessment", "fire risk assessment", "search and rescue",
				"community safety", "hazardous materials", "teamwork",
			},
			TransferableFrom: []string{"healthcare"},
		},
		"marketing": {
			Keywords: []string{
				"marketing", "brand", "campaign", "campaigns", "seo", "social media", "content",
				"digital marketing", "advertising", "crm", "analytics", "market research",
			},
			Skills: []string{
				"seo", "social media", "content marketing", "copywriting", "google analytics",
				"campaign management", "email marketing", "market research", "branding", "crm",
			},
			TransferableFrom: []string{"sales", "retail"},
		},
		"sales": {
			Keywords: []string{
				"sales", "selling", "targets", "account management", "business development",
				"pipeline", "clients", "revenue", "quota", "negotiation", "b2b", "crm",
			},
			Skills: []string{
				"negotiation", "account management", "business development", "lead generation",
				"crm", "customer service", "salesforce", "cold calling", "relationship building",
			},
			TransferableFrom: []string{"retail", "hospitality", "marketing"},
		},
		"hospitality": {
			Keywords: []string{
				"hotel", "restaurant", "guest", "guests", "hospitality", "chef", "kitchen",
				"front of house", "bar", "catering", "events", "food",
			},
			Skills: []string{
				"customer service", "food safety", "cash handling", "event planning",
				"team leadership", "stock control", "reservations",
			},
			TransferableFrom: []string{"retail"},
		},
		"retail": {
			Keywords: []string{
				"retail", "store", "shop", "merchandising", "stock", "till", "customers",
				"sales floor", "visual merchandising", "inventory",
			},
			Skills: []string{
				"customer service", "merchandising", "stock control", "cash handling",
				"inventory management", "visual merchandising",
			},
			TransferableFrom: []string{"hospitality", "sales"},
		},
		"legal": {
			Keywords: []string{
				"legal", "law", "solicitor", "lawyer", "litigation", "contract", "contracts",
				"paralegal", "barrister", "counsel", "regulatory",
			},
			Skills: []string{
				"legal research", "contract drafting", "litigation", "compliance",
				"due diligence", "case management", "legal writing",
			},
			TransferableFrom:   []string{"finance"},
			IncompatibleFields: []string{"hospitality", "retail", "construction"},
		},
		"logistics": {
			Keywords: []string{
				"logistics", "supply chain", "warehouse", "distribution", "transport", "fleet",
				"procurement", "inventory", "shipping", "freight",
			},
			Skills: []string{
				"supply chain management", "inventory management", "procurement", "forklift",
				"route planning", "warehouse management", "logistics planning",
			},
			TransferableFrom: []string{"retail", "manufacturing"},
		},
		"manufacturing": {
			Keywords: []string{
				"manufacturing", "production", "factory", "assembly", "lean", "quality control",
				"machining", "operator", "plant", "process improvement",
			},
			Skills: []string{
				"lean", "six sigma", "quality control", "production planning", "machine operation",
				"process improvement", "health and safety",
			},
			TransferableFrom: []string{"engineering", "logistics"},
		},
		"human-resources": {
			Keywords: []string{
				"hr", "human resources", "recruitment", "recruiter", "talent", "onboarding",
				"employee relations", "payroll", "cipd", "hris",
			},
			Skills: []string{
				"recruitment", "employee relations", "onboarding", "hris",
				"performance management", "payroll", "training and development",
			},
			TransferableFrom: []string{"education", "sales"},
		},
	}
}

func defaultRoles() map[string]map[string]Role {
	return map[string]map[string]Role{
		"technology": {
			"software-developer": {
				Titles:          []string{"software developer", "software engineer", "developer", "programmer"},
				Skills:          []string{"javascript", "git", "testing", "sql", "rest apis", "problem solving"},
				PreferredSkills: []string{"react", "node.js", "docker", "agile"},
				Qualifications:  []string{"degree in computer science"},
				Keywords:        []string{"software", "developer", "code", "api"},
				ExperienceYears: []int{2},
				Seniority:       "mid",
			},
			"junior-software-developer": {
				Titles:          []string{"junior developer", "junior software developer", "graduate developer", "junior software engineer"},
				Skills:          []string{"javascript", "git", "html", "css", "problem solving"},
				PreferredSkills: []string{"react", "node.js", "testing"},
				Keywords:        []string{"junior", "developer", "learning"},
				ExperienceYears: []int{0, 2},
				Seniority:       "junior",
			},
			"data-analyst": {
				Titles:          []string{"data analyst", "business intelligence analyst"},
				Skills:          []string{"sql", "excel", "data analysis", "python"},
				PreferredSkills: []string{"power bi", "tableau"},
				Keywords:        []string{"data", "reporting", "insights"},
				ExperienceYears: []int{2},
				Seniority:       "mid",
			},
			"devops-engineer": {
				Titles:          []string{"devops engineer", "site reliability engineer", "platform engineer"},
				Skills:          []string{"docker", "kubernetes", "aws", "ci/cd", "linux"},
				PreferredSkills: []string{"terraform", "python", "go"},
				Keywords:        []string{"infrastructure", "automation", "cloud"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
		},
		"building-safety": {
			"head-of-building-safety": {
				Titles: []string{"head of building safety", "building safety director"},
				Skills: []string{
					"building safety", "fire risk assessment", "risk assessment", "health and safety",
					"building regulations", "leadership", "stakeholder management", "compliance",
				},
				PreferredSkills: []string{"fire strategy", "incident investigation"},
				Qualifications:  []string{"nebosh"},
				Keywords:        []string{"building safety", "compliance", "residents", "safety case"},
				ExperienceYears: []int{5},
				Seniority:       "executive",
			},
			"building-safety-manager": {
				Titles:          []string{"building safety manager", "building safety officer"},
				Skills:          []string{"building safety", "fire risk assessment", "risk assessment", "building regulations", "compliance"},
				PreferredSkills: []string{"stakeholder management", "report writing"},
				Qualifications:  []string{"nebosh"},
				Keywords:        []string{"building safety", "inspection", "residents"},
				ExperienceYears: []int{3},
				Seniority:       "senior",
			},
			"fire-safety-advisor": {
				Titles:          []string{"fire safety advisor", "fire risk assessor", "fire safety adviser"},
				Skills:          []string{"fire risk assessment", "fire safety", "building regulations", "report writing"},
				PreferredSkills: []string{"fire strategy"},
				Qualifications:  []string{"nebosh"},
				Keywords:        []string{"fire", "assessment", "inspection"},
				ExperienceYears: []int{2},
				Seniority:       "mid",
			},
		},
		"emergency-services": {
			"firefighter": {
				Titles:          []string{"firefighter", "fire fighter"},
				Skills:          []string{"emergency response", "first aid", "teamwork", "fire safety"},
				PreferredSkills: []string{"community safety"},
				Keywords:        []string{"fire", "rescue", "community"},
				ExperienceYears: []int{0},
				Seniority:       "entry",
			},
			"station-manager": {
				Titles:          []string{"station manager", "watch manager", "group manager"},
				Skills:          []string{"incident command", "leadership", "risk assessment", "crisis management"},
				PreferredSkills: []string{"stakeholder management"},
				Keywords:        []string{"station", "command", "crews"},
				ExperienceYears: []int{5},
				Seniority:       "senior",
			},
		},
		"healthcare": {
			"registered-nurse": {
				Titles:          []string{"registered nurse", "staff nurse", "nurse"},
				Skills:          []string{"patient care", "medication administration", "clinical assessment", "infection control", "record keeping"},
				PreferredSkills: []string{"triage", "phlebotomy"},
				Qualifications:  []string{"nmc registration"},
				Keywords:        []string{"patients", "ward", "clinical"},
				ExperienceYears: []int{1},
				Seniority:       "mid",
			},
			"healthcare-assistant": {
				Titles:          []string{"healthcare assistant", "care assistant", "support worker"},
				Skills:          []string{"patient care", "communication", "first aid"},
				PreferredSkills: []string{"record keeping"},
				Keywords:        []string{"care", "patients"},
				ExperienceYears: []int{0},
				Seniority:       "entry",
			},
		},
		"finance": {
			"accountant": {
				Titles:          []string{"accountant", "management accountant", "financial accountant"},
				Skills:          []string{"accounting", "financial reporting", "excel", "reconciliation", "budgeting"},
				PreferredSkills: []string{"sap", "tax"},
				Qualifications:  []string{"acca", "cima"},
				Keywords:        []string{"accounts", "month end", "ledger"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
			"financial-analyst": {
				Titles:          []string{"financial analyst", "finance analyst"},
				Skills:          []string{"financial analysis", "forecasting", "excel", "budgeting"},
				PreferredSkills: []string{"sql", "power bi"},
				Keywords:        []string{"forecast", "variance", "reporting"},
				ExperienceYears: []int{2},
				Seniority:       "mid",
			},
		},
		"education": {
			"teacher": {
				Titles:          []string{"teacher", "classroom teacher", "secondary teacher", "primary teacher"},
				Skills:          []string{"lesson planning", "classroom management", "safeguarding", "assessment"},
				PreferredSkills: []string{"differentiation", "mentoring"},
				Qualifications:  []string{"qts"},
				Keywords:        []string{"pupils", "curriculum", "lessons"},
				ExperienceYears: []int{1},
				Seniority:       "mid",
			},
		},
		"engineering": {
			"mechanical-engineer": {
				Titles:          []string{"mechanical engineer", "design engineer"},
				Skills:          []string{"cad", "solidworks", "project management", "root cause analysis"},
				PreferredSkills: []string{"lean", "quality assurance"},
				Qualifications:  []string{"degree in engineering"},
				Keywords:        []string{"design", "mechanical", "prototype"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
		},
		"construction": {
			"site-manager": {
				Titles:          []string{"site manager", "construction manager"},
				Skills:          []string{"site management", "health and safety", "scheduling", "subcontractor management"},
				PreferredSkills: []string{"building regulations", "quality control"},
				Qualifications:  []string{"cscs", "smsts"},
				Keywords:        []string{"site", "programme", "subcontractors"},
				ExperienceYears: []int{5},
				Seniority:       "senior",
			},
		},
		"marketing": {
			"digital-marketing-executive": {
				Titles:          []string{"digital marketing executive", "marketing executive"},
				Skills:          []string{"seo", "social media", "content marketing", "google analytics"},
				PreferredSkills: []string{"email marketing", "copywriting"},
				Keywords:        []string{"campaigns", "digital", "content"},
				ExperienceYears: []int{1},
				Seniority:       "junior",
			},
			"marketing-manager": {
				Titles:          []string{"marketing manager", "head of marketing"},
				Skills:          []string{"campaign management", "branding", "market research", "leadership"},
				PreferredSkills: []string{"crm", "google analytics"},
				Keywords:        []string{"strategy", "brand", "campaigns"},
				ExperienceYears: []int{5},
				Seniority:       "senior",
			},
		},
		"sales": {
			"sales-executive": {
				Titles:          []string{"sales executive", "sales representative", "business development executive"},
				Skills:          []string{"negotiation", "lead generation", "crm", "relationship building"},
				PreferredSkills: []string{"salesforce", "cold calling"},
				Keywords:        []string{"targets", "pipeline", "clients"},
				ExperienceYears: []int{1},
				Seniority:       "junior",
			},
			"account-manager": {
				Titles:          []string{"account manager", "key account manager"},
				Skills:          []string{"account management", "negotiation", "relationship building", "customer service"},
				PreferredSkills: []string{"crm"},
				Keywords:        []string{"accounts", "clients", "retention"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
		},
		"hospitality": {
			"restaurant-manager": {
				Titles:          []string{"restaurant manager", "general manager", "front of house manager"},
				Skills:          []string{"customer service", "team leadership", "food safety", "stock control"},
				PreferredSkills: []string{"event planning"},
				Keywords:        []string{"guests", "service", "restaurant"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
		},
		"retail": {
			"store-manager": {
				Titles:          []string{"store manager", "shop manager", "retail manager"},
				Skills:          []string{"customer service", "stock control", "visual merchandising", "leadership"},
				PreferredSkills: []string{"inventory management"},
				Keywords:        []string{"store", "sales", "customers"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
			"retail-assistant": {
				Titles:          []string{"retail assistant", "sales assistant", "shop assistant"},
				Skills:          []string{"customer service", "cash handling", "teamwork"},
				Keywords:        []string{"store", "customers"},
				ExperienceYears: []int{0},
				Seniority:       "entry",
			},
		},
		"legal": {
			"solicitor": {
				Titles:          []string{"solicitor", "associate solicitor", "lawyer"},
				Skills:          []string{"legal research", "contract drafting", "litigation", "case management"},
				PreferredSkills: []string{"due diligence"},
				Qualifications:  []string{"law degree"},
				Keywords:        []string{"clients", "matters", "law"},
				ExperienceYears: []int{2},
				Seniority:       "mid",
			},
			"paralegal": {
				Titles:          []string{"paralegal", "legal assistant"},
				Skills:          []string{"legal research", "case management", "attention to detail"},
				Keywords:        []string{"legal", "documents"},
				ExperienceYears: []int{0},
				Seniority:       "entry",
			},
		},
		"logistics": {
			"warehouse-manager": {
				Titles:          []string{"warehouse manager", "logistics manager", "distribution manager"},
				Skills:          []string{"warehouse management", "inventory management", "leadership", "health and safety"},
				PreferredSkills: []string{"forklift", "lean"},
				Keywords:        []string{"warehouse", "distribution", "kpis"},
				ExperienceYears: []int{3},
				Seniority:       "mid",
			},
		},
		"manufacturing": {
			"production-manager": {
				Titles:          []string{"production manager", "production supervisor", "operations manager"},
				Skills:          []string{"production planning", "lean", "quality control", "leadership"},
				PreferredSkills: []string{"six sigma", "process improvement"},
				Keywords:        []string{"production", "output", "shift"},
				ExperienceYears: []int{4},
				Seniority:       "senior",
			},
		},
		"human-resources": {
			"hr-advisor": {
				Titles:          []string{"hr advisor", "hr adviser", "people advisor"},
				Skills:          []string{"employee relations", "onboarding", "hris", "communication"},
				PreferredSkills: []string{"performance management"},
				Qualifications:  []string{"cipd"},
				Keywords:        []string{"employees", "policy", "casework"},
				ExperienceYears: []int{2},
				Seniority:       "mid",
			},
			"recruiter": {
				Titles:          []string{"recruiter", "recruitment consultant", "talent acquisition"},
				Skills:          []string{"recruitment", "negotiation", "relationship building"},
				PreferredSkills: []string{"hris"},
				Keywords:        []string{"candidates", "hiring"},
				ExperienceYears: []int{1},
				Seniority:       "junior",
			},
		},
	}
}

func defaultHighTransferability() map[string][]string {
	return map[string][]string{
		"emergency-services": {"building-safety", "healthcare"},
		"engineering":        {"construction", "manufacturing", "building-safety"},
		"construction":       {"building-safety", "engineering"},
		"technology":         {"engineering"},
		"sales":              {"marketing"},
		"retail":             {"hospitality", "sales"},
		"hospitality":        {"retail"},
		"education":          {"human-resources"},
		"manufacturing":      {"logistics", "engineering"},
		"logistics":          {"manufacturing"},
	}
}

func defaultConcepts() [][]string {
	return [][]string{
		{"leadership", "team leadership", "management", "incident command", "supervision", "team management", "line management"},
		{"communication", "stakeholder management", "stakeholder engagement", "presentation", "public speaking", "interpersonal skills"},
		{"risk assessment", "risk management", "fire risk assessment", "hazard identification"},
		{"health and safety", "safety management", "fire safety", "building safety", "nebosh", "iosh"},
		{"compliance", "regulatory compliance", "building regulations", "auditing"},
		{"problem solving", "critical thinking", "analytical skills", "troubleshooting", "root cause analysis"},
		{"project management", "programme management", "scheduling", "planning", "prince2"},
		{"customer service", "client relations", "relationship building", "account management"},
		{"javascript", "typescript", "node.js", "react", "web development"},
		{"data analysis", "analytics", "sql", "excel", "google analytics"},
		{"teamwork", "collaboration"},
		{"crisis management", "emergency response", "incident management"},
		{"training and development", "mentoring", "coaching", "tutoring"},
		{"docker", "kubernetes", "ci/cd", "devops"},
		{"stock control", "inventory management", "warehouse management"},
		{"incident investigation", "root cause analysis"},
	}
}

func defaultActionVerbs() map[string][]string {
	return map[string][]string{
		"manage":      {"management", "leadership"},
		"lead":        {"leadership"},
		"led":         {"leadership", "team leadership"},
		"supervise":   {"supervision", "leadership"},
		"command":     {"incident command", "leadership"},
		"coordinate":  {"coordination", "planning"},
		"train":       {"training and development"},
		"mentor":      {"mentoring"},
		"coach":       {"coaching"},
		"analyse":     {"data analysis", "problem solving"},
		"analyze":     {"data analysis", "problem solving"},
		"negotiate":   {"negotiation"},
		"present":     {"presentation", "communication"},
		"communicate": {"communication"},
		"inspect":     {"inspection"},
		"investigate": {"incident investigation"},
		"audit":       {"auditing"},
		"plan":        {"planning"},
		"budget":      {"budgeting"},
		"recruit":     {"recruitment"},
		"teach":       {"teaching"},
		"taught":      {"teaching"},
		"resolve":     {"problem solving"},
		"improve":     {"process improvement"},
		"optimise":    {"process improvement"},
		"assess":      {"risk assessment"},
		"respond":     {"emergency response"},
		"deliver":     {"project management"},
		"collaborate": {"collaboration", "teamwork"},
	}
}

func defaultStopWords() []string {
	return []string{
		"a", "about", "above", "across", "after", "all", "also", "an", "and", "any", "are", "as",
		"at", "be", "been", "being", "both", "but", "by", "can", "candidate", "could", "do",
		"does", "during", "each", "etc", "for", "from", "good", "great", "has", "have", "having",
		"help", "her", "his", "how", "including", "into", "is", "it", "its", "job", "join",
		"just", "least", "like", "looking", "make", "more", "most", "must", "new", "not", "of",
		"on", "one", "or", "other", "our", "out", "over", "own", "per", "plus", "role", "should",
		"so", "some", "strong", "such", "team", "than", "that", "the", "their", "them", "then",
		"there", "these", "they", "this", "those", "through", "to", "under", "up", "very", "was",
		"we", "well", "were", "what", "when", "where", "which", "while", "who", "will", "with",
		"within", "work", "working", "would", "year", "years", "you", "your", "ideal", "required",
		"requirements", "essential", "preferred", "desirable", "ability", "able", "experience",
		"knowledge", "skills", "minimum", "using", "use", "within", "across", "based",
	}
}

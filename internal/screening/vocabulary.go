package screening

// candidateVocabulary is the canonical ordered skill list used when parsing
// resume text. Matching is case-insensitive substring containment, so entries
// are canonical display names, not patterns. Entry text and order are load
// bearing: downstream results report matched skills in this order.
var candidateVocabulary = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "PHP", "Go", "Rust", "Swift", "Kotlin",
	// Frontend
	"React", "Vue", "Angular", "Svelte", "HTML", "CSS", "SASS", "LESS", "Tailwind", "Bootstrap",
	// Backend
	"Node.js", "Express", "Django", "Flask", "FastAPI", "Spring Boot", "ASP.NET", "Ruby on Rails",
	// Databases
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "Cassandra", "DynamoDB", "SQL",
	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins", "CI/CD", "Git", "GitHub",
	// Data and AI
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Machine Learning", "Deep Learning", "NLP",
	// Other
	"GraphQL", "REST API", "Microservices", "Agile", "Scrum", "Testing", "Jest", "Pytest",
}

// requirementVocabulary is the narrower list used when reading required
// skills out of a job description. The two lists overlap but are not equal
// and are kept as separate constants; see DESIGN.md for the open question
// about unifying them.
var requirementVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "PHP", "Go",
	"React", "Vue", "Angular", "Node.js", "Express", "Django", "Flask", "Spring Boot",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "SQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "CI/CD", "Git",
	"TensorFlow", "PyTorch", "Machine Learning", "Deep Learning",
	"GraphQL", "REST API", "Microservices", "Agile", "Testing",
}

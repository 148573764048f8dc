package seed

import "github.com/yukikurage/collabhub/internal/models"

var fieldSubfields = []struct {
	field     string
	subfields []string
}{
	{"Computer Science", []string{"Machine Learning", "Artificial Intelligence", "Database Systems", "Computer Networks", "Cybersecurity"}},
	{"Biology", []string{"Genetics", "Molecular Biology", "Ecology", "Microbiology", "Biotechnology"}},
	{"Physics", []string{"Quantum Physics", "Astrophysics", "Nuclear Physics", "Particle Physics", "Thermodynamics"}},
	{"Chemistry", []string{"Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry", "Analytical Chemistry", "Biochemistry"}},
	{"Mathematics", []string{"Algebra", "Calculus", "Statistics", "Number Theory", "Topology"}},
}

// The first six users are researchers; projects, posts and requests refer to them by index.
var users = []models.User{
	{Name: "Dr. John Smith", Email: "john@mit.edu", UserType: models.UserTypeResearcher, Institution: "MIT", Country: "USA", Field: "Machine Learning", Rating: 4.8},
	{Name: "Dr. Sarah Johnson", Email: "sarah@stanford.edu", UserType: models.UserTypeResearcher, Institution: "Stanford University", Country: "USA", Field: "Artificial Intelligence", Rating: 4.7},
	{Name: "Prof. Ahmed Hassan", Email: "ahmed@oxford.ac.uk", UserType: models.UserTypeResearcher, Institution: "Oxford University", Country: "UK", Field: "Genetics", Rating: 4.9},
	{Name: "Dr. Maria Garcia", Email: "maria@barcelona.edu", UserType: models.UserTypeResearcher, Institution: "University of Barcelona", Country: "Spain", Field: "Quantum Physics", Rating: 4.6},
	{Name: "Dr. Wei Chen", Email: "wei@tsinghua.edu.cn", UserType: models.UserTypeResearcher, Institution: "Tsinghua University", Country: "China", Field: "Database Systems", Rating: 4.5},
	{Name: "Prof. Raj Kumar", Email: "raj@iit.ac.in", UserType: models.UserTypeResearcher, Institution: "IIT Delhi", Country: "India", Field: "Cybersecurity", Rating: 4.7},
	{Name: "Tech Innovators Fund", Email: "contact@techfund.org", UserType: models.UserTypeFundingAgency, Institution: "Tech Innovators Fund", Country: "USA", Field: "Technology"},
	{Name: "Global Research Foundation", Email: "info@globalresearch.org", UserType: models.UserTypeFundingAgency, Institution: "Global Research Foundation", Country: "Switzerland", Field: "Science"},
}

type problemSeed struct {
	models.Problem
	subfield string
}

var problems = []problemSeed{
	{models.Problem{Name: "Climate Change Impact on Ecosystems", Severity: models.SeverityHigh, Description: "Understanding how climate change affects biodiversity and ecosystem services.", CurrentWork: "Several teams studying temperature effects", DoneWork: "Published 50+ papers on species migration", Gaps: "Need more data on tropical ecosystems"}, "Ecology"},
	{models.Problem{Name: "AI Bias in Healthcare Algorithms", Severity: models.SeverityHigh, Description: "Addressing biases in AI systems used for medical diagnosis.", CurrentWork: "Testing fairness metrics", DoneWork: "Identified bias in 3 major systems", Gaps: "Limited datasets from diverse populations"}, "Artificial Intelligence"},
	{models.Problem{Name: "Quantum Computing Error Correction", Severity: models.SeverityMedium, Description: "Developing robust error correction codes for quantum computers.", CurrentWork: "Testing new topological codes", DoneWork: "Demonstrated 99% error reduction", Gaps: "Scalability to 1000+ qubits"}, "Quantum Physics"},
	{models.Problem{Name: "Database Security Vulnerabilities", Severity: models.SeverityHigh, Description: "Identifying and patching SQL injection vulnerabilities.", CurrentWork: "Automated vulnerability scanning", DoneWork: "Patched 200+ systems", Gaps: "Need real-time detection systems"}, "Database Systems"},
	{models.Problem{Name: "Cancer Gene Therapy Delivery", Severity: models.SeverityMedium, Description: "Improving viral vectors for gene therapy delivery to cancer cells.", CurrentWork: "Testing AAV vectors", DoneWork: "Successful in 5 cancer types", Gaps: "Immune response challenges"}, "Genetics"},
	{models.Problem{Name: "Machine Learning Model Interpretability", Severity: models.SeverityMedium, Description: "Making deep learning models more transparent and explainable.", CurrentWork: "Developing SHAP values", DoneWork: "Created 3 visualization tools", Gaps: "Works only for small models"}, "Machine Learning"},
	{models.Problem{Name: "Renewable Energy Storage", Severity: models.SeverityHigh, Description: "Developing efficient battery technologies for renewable energy.", CurrentWork: "Testing solid-state batteries", DoneWork: "Improved capacity by 30%", Gaps: "Cost reduction needed"}, "Physical Chemistry"},
	{models.Problem{Name: "Cybersecurity in IoT Devices", Severity: models.SeverityHigh, Description: "Securing billions of connected IoT devices from attacks.", CurrentWork: "Implementing blockchain authentication", DoneWork: "Secured 1M+ devices", Gaps: "Computational overhead too high"}, "Cybersecurity"},
	{models.Problem{Name: "Antibiotic Resistance Mechanisms", Severity: models.SeverityHigh, Description: "Understanding how bacteria develop resistance to antibiotics.", CurrentWork: "Genome sequencing studies", DoneWork: "Identified 20 resistance genes", Gaps: "Need faster detection methods"}, "Microbiology"},
	{models.Problem{Name: "Graph Neural Networks Optimization", Severity: models.SeverityLow, Description: "Improving training speed and accuracy of GNNs.", CurrentWork: "Testing new aggregation functions", DoneWork: "Reduced training time by 40%", Gaps: "Limited to small graphs"}, "Machine Learning"},
}

type projectSeed struct {
	title, description string
	owner              int
	field, subfield    string
	vacancy            bool
}

var projects = []projectSeed{
	{"Deep Learning for Medical Imaging", "Using CNNs to detect diseases from X-rays and MRI scans.", 0, "Computer Science", "Machine Learning", true},
	{"CRISPR Gene Editing for Cancer", "Developing precise CRISPR techniques for cancer treatment.", 2, "Biology", "Genetics", true},
	{"Quantum Cryptography Protocol", "Creating unbreakable encryption using quantum entanglement.", 3, "Physics", "Quantum Physics", false},
	{"AI-Powered Cybersecurity System", "Real-time threat detection using machine learning.", 5, "Computer Science", "Cybersecurity", true},
	{"Distributed Database Optimization", "Improving query performance in distributed systems.", 4, "Computer Science", "Database Systems", false},
	{"Climate Modeling with AI", "Using neural networks to predict climate patterns.", 1, "Computer Science", "Artificial Intelligence", true},
}

var posts = []struct {
	author  int
	content string
}{
	{0, "Looking for collaborators on a new AI project focused on natural language processing. Anyone interested in transformer models?"},
	{1, "Just published our paper on reinforcement learning! Check it out and let me know your thoughts."},
	{2, "Excited to announce we got funding for our gene therapy research! Looking for molecular biologists to join the team."},
	{3, "Has anyone worked with quantum error correction codes? Would love to discuss implementation challenges."},
	{4, "Our new database indexing algorithm reduced query time by 50%! Happy to share details with anyone interested."},
	{5, "Presenting at the International Cybersecurity Conference next month. Let me know if you'll be there!"},
	{0, "Seeking feedback on our latest ML model architecture. Anyone available for a quick review?"},
	{1, "What are the best practices for handling imbalanced datasets in medical AI? Open to suggestions!"},
}

var requests = []struct {
	sender, receiver, project int
	status                    models.RequestStatus
}{
	{1, 0, 0, models.RequestStatusPending},
	{4, 5, 3, models.RequestStatusPending},
	{3, 2, 1, models.RequestStatusAccepted},
}

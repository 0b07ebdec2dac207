package exam

import (
	"fmt"
	"strings"
)

// CompetencyArea is one content area within an exam component, with the
// topics the board exam draws from and example question stems used to steer
// generation toward the board format.
type CompetencyArea struct {
	Focus       string
	Topics      []string
	SampleStems []string
}

// GeneralEducationCompetencies covers the five GenEd subjects.
var GeneralEducationCompetencies = map[string]CompetencyArea{
	"English": {
		Topics: []string{
			"Subject-verb agreement", "Correct verb tenses", "Pronoun-antecedent agreement",
			"Parallel structure", "Dangling and misplaced modifiers", "Active and passive voice",
			"Direct and indirect speech", "Conditional sentences", "Idiomatic expressions",
			"Context clues and vocabulary", "Main idea and supporting details",
			"Inferences and conclusions", "Author's purpose and tone", "Fact vs opinion",
			"Figurative language (simile, metaphor, personification, hyperbole)",
			"Literary genres and elements", "Reading comprehension passages",
		},
		SampleStems: []string{
			"Which sentence is grammatically correct?",
			"Choose the correct verb form:",
			"What figure of speech is used in the sentence?",
			"The passage mainly discusses...",
			"What can be inferred from the text?",
		},
	},
	"Filipino": {
		Topics: []string{
			"Paksa at panaguri", "Mga bahagi ng pananalita", "Kayarian ng pangungusap",
			"Uri ng pangungusap ayon sa gamit at kayarian", "Pagkakasunod-sunod ng pangyayari",
			"Sanhi at bunga", "Pangunahing ideya at mga detalye", "Mga tayutay",
			"Panitikang Filipino (maikling kwento, tula, dula, nobela)",
			"Mga pangunahing manunulat (Rizal, Balagtas, Bonifacio)",
			"Panahon ng panitikan (Pre-kolonyal, Kolonyal, Kontemporaryo)",
		},
		SampleStems: []string{
			"Ano ang paksa ng pangungusap?",
			"Alin ang wastong gamit ng salita?",
			"Anong tayutay ang ginamit sa pangungusap?",
			"Ano ang pangunahing ideya ng talata?",
		},
	},
	"Mathematics": {
		Topics: []string{
			"Four fundamental operations", "Fractions, decimals, percentages",
			"Ratio and proportion", "Direct and inverse variation",
			"Algebraic expressions and equations", "Linear equations and inequalities",
			"Word problems", "Number sequences and patterns", "Basic statistics (mean, median, mode)",
			"Probability basics", "Geometry (area, perimeter, volume)",
			"Pythagorean theorem", "Interest (simple and compound)",
		},
		SampleStems: []string{
			"Solve for x:",
			"What is the value of...",
			"If... then what is...",
			"Find the area/perimeter/volume of...",
		},
	},
	"Science": {
		Topics: []string{
			"Scientific method steps", "Matter and its properties", "Atomic structure",
			"Elements and compounds", "Chemical reactions", "Force and motion",
			"Newton's Laws", "Energy forms and transformation", "Waves and sound",
			"Light and optics", "Electricity and magnetism", "Cell structure and function",
			"Human body systems", "Ecology and ecosystems", "Earth's layers",
			"Weather and climate", "Solar system",
		},
		SampleStems: []string{
			"Which of the following best describes...",
			"What happens when...",
			"Which process is responsible for...",
			"The function of... is to...",
		},
	},
	"Social Studies": {
		Topics: []string{
			"Philippine pre-colonial history", "Spanish colonization (1565-1898)",
			"Philippine Revolution and heroes", "American period", "Japanese occupation",
			"Post-war Philippines", "Martial Law era", "EDSA Revolution",
			"1987 Philippine Constitution", "Three branches of government",
			"Bill of Rights", "Local government structure", "Philippine geography",
			"ASEAN and international relations", "Economic concepts (supply, demand, GDP)",
			"Current Philippine issues",
		},
		SampleStems: []string{
			"Who was responsible for...",
			"What event led to...",
			"According to the Philippine Constitution...",
			"Which of the following is NOT...",
		},
	},
}

// ProfessionalEducationCompetencies covers pedagogy: how to teach, not what
// to teach.
var ProfessionalEducationCompetencies = map[string]CompetencyArea{
	"Facilitating Learning": {
		Topics: []string{
			"Piaget's Cognitive Development (Sensorimotor, Preoperational, Concrete, Formal)",
			"Vygotsky's Zone of Proximal Development and Scaffolding",
			"Erikson's Psychosocial Development stages",
			"Kohlberg's Moral Development (Pre-conventional, Conventional, Post-conventional)",
			"Bandura's Social Learning Theory and Self-efficacy",
			"Bruner's Discovery Learning and spiral curriculum",
			"Gardner's Multiple Intelligences (8 types)",
			"Bloom's Taxonomy (Remember, Understand, Apply, Analyze, Evaluate, Create)",
			"Maslow's Hierarchy of Needs",
			"Learning styles (Visual, Auditory, Kinesthetic)",
		},
		SampleStems: []string{
			"According to Piaget, a child in the concrete operational stage can...",
			"Vygotsky's ZPD refers to...",
			"A teacher using scaffolding would...",
			"Which level of Bloom's Taxonomy is demonstrated when...",
		},
	},
	"Curriculum Development": {
		Topics: []string{
			"Tyler's Curriculum Model (Objectives, Content, Methods, Evaluation)",
			"Taba's Grassroots Model", "Subject-centered vs Learner-centered curriculum",
			"K to 12 Curriculum Framework", "Spiral Progression Approach",
			"Outcomes-Based Education (OBE)", "Competency-Based Education",
			"Curriculum alignment (written, taught, tested)",
			"Mother Tongue-Based Multilingual Education (MTB-MLE)",
			"21st Century Skills integration",
		},
		SampleStems: []string{
			"The K to 12 program aims to...",
			"Spiral progression means...",
			"In outcomes-based education, the focus is on...",
		},
	},
	"Assessment of Learning": {
		Topics: []string{
			"Formative vs Summative Assessment", "Diagnostic Assessment",
			"Authentic Assessment", "Portfolio Assessment",
			"Performance-Based Assessment", "Rubrics (holistic vs analytic)",
			"Table of Specifications (TOS)", "Test validity and reliability",
			"Item analysis (difficulty index, discrimination index)",
			"Assessment OF, FOR, and AS learning",
			"DepEd grading system (Written Work, Performance Task, Quarterly Assessment)",
		},
		SampleStems: []string{
			"Formative assessment is used to...",
			"A rubric that describes levels of performance is called...",
			"Assessment FOR learning means...",
		},
	},
	"Educational Technology": {
		Topics: []string{
			"TPACK Framework (Technology, Pedagogy, Content Knowledge)",
			"SAMR Model (Substitution, Augmentation, Modification, Redefinition)",
			"Blended learning", "Flipped classroom", "Online learning platforms",
			"Educational apps and software", "Digital citizenship",
			"ICT integration in teaching",
		},
		SampleStems: []string{
			"According to the SAMR model, technology at the Modification level...",
			"TPACK stands for...",
		},
	},
	"Classroom Management": {
		Topics: []string{
			"Proactive vs reactive management", "Rules and routines",
			"Positive reinforcement", "Behavior modification techniques",
			"Kounin's classroom management (withitness, momentum, smoothness)",
			"Dreikurs' logical consequences", "Assertive discipline (Canter)",
			"Classroom arrangement and environment",
		},
		SampleStems: []string{
			"A teacher who demonstrates 'withitness' is able to...",
			"According to Dreikurs, logical consequences should be...",
		},
	},
	"Philippine Education Laws": {
		Topics: []string{
			"RA 4670 - Magna Carta for Public School Teachers (rights, benefits)",
			"RA 7836 - Philippine Teachers Professionalization Act (licensure, CPD)",
			"RA 9155 - Governance of Basic Education Act (school-based management)",
			"RA 10533 - Enhanced Basic Education Act (K to 12)",
			"RA 10627 - Anti-Bullying Act", "RA 7877 - Anti-Sexual Harassment Act",
			"RA 7610 - Child Protection Policy", "Code of Ethics for Professional Teachers",
			"Philippine Professional Standards for Teachers (PPST) - 7 Domains",
		},
		SampleStems: []string{
			"According to RA 4670, teachers are entitled to...",
			"The PPST Domain 1 focuses on...",
			"RA 10533 mandates...",
		},
	},
}

// SpecializationCompetencies covers subject-specific content knowledge,
// keyed by the specialization's display name.
var SpecializationCompetencies = map[string]CompetencyArea{
	"English": {
		Focus: "English language, literature, and language teaching methodology",
		Topics: []string{
			"Advanced grammar and syntax", "Morphology and word formation",
			"Phonetics and phonology", "Semantics and pragmatics",
			"British literature (Shakespeare, Dickens, Austen)",
			"American literature (Twain, Hemingway, Fitzgerald)",
			"World literature and literary movements",
			"Literary criticism approaches", "Creative writing",
			"Second language acquisition theories", "Communicative Language Teaching (CLT)",
			"Grammar-Translation vs Direct Method", "Task-based language teaching",
			"Teaching the four macro skills (Listening, Speaking, Reading, Writing)",
			"Error correction and feedback",
		},
	},
	"Filipino": {
		Focus: "Filipino language, Philippine literature, and Filipino teaching methodology",
		Topics: []string{
			"Istruktura ng wikang Filipino", "Morpolohiya at sintaksis",
			"Panitikang Filipino sa iba't ibang panahon",
			"Pre-kolonyal na panitikan (epiko, mito, alamat)",
			"Panitikan sa panahon ng Kastila (Florante at Laura, Noli Me Tangere)",
			"Panitikan sa panahon ng Amerikano at Hapon",
			"Makabagong panitikan at kontemporaryong manunulat",
			"Mga teorya sa pagtuturo ng wika", "Komunikatibong pagtuturo",
			"Pagtataya sa Filipino",
		},
	},
	"Mathematics": {
		Focus: "Pure mathematics, applied mathematics, and mathematics education",
		Topics: []string{
			"Real number system and properties", "Algebraic structures (groups, rings, fields)",
			"Linear algebra (matrices, determinants, vectors)",
			"Calculus (limits, derivatives, integrals, applications)",
			"Differential equations", "Number theory",
			"Euclidean and non-Euclidean geometry", "Trigonometry and identities",
			"Analytic geometry (conic sections)", "Statistics and probability theory",
			"Discrete mathematics", "Mathematical proof techniques",
			"Problem-solving strategies (Polya's method)",
			"Mathematics curriculum and instruction", "Manipulatives and visual aids",
			"Technology in mathematics teaching", "Common mathematical misconceptions",
		},
	},
	"Science": {
		Focus: "Natural sciences and science education",
		Topics: []string{
			"Cell biology and molecular biology", "Genetics and heredity",
			"Evolution and biodiversity", "Ecology and environment",
			"Human anatomy and physiology", "Organic and inorganic chemistry",
			"Stoichiometry and chemical calculations", "Thermodynamics",
			"Classical mechanics", "Electricity and magnetism",
			"Modern physics concepts", "Earth science and geology",
			"Astronomy and astrophysics", "Scientific inquiry and process skills",
			"Laboratory safety and management", "Science curriculum frameworks",
		},
	},
	"Social Studies": {
		Focus: "History, geography, economics, political science, and social studies education",
		Topics: []string{
			"Philippine history (comprehensive)", "Asian history and civilizations",
			"World history major events", "Physical geography concepts",
			"Human geography and demography", "Microeconomics and macroeconomics",
			"Philippine economic development", "Political science theories",
			"Philippine government and politics", "International relations",
			"Sociology and anthropology basics", "Teaching strategies for social studies",
		},
	},
	"Values Education": {
		Focus: "Ethics, values formation, and character education",
		Topics: []string{
			"Ethical theories (deontology, utilitarianism, virtue ethics)",
			"Filipino values and character", "Values clarification strategies",
			"Moral dilemma discussions", "Character education programs",
			"Peace education", "Human rights education",
			"Citizenship education", "Environmental ethics",
		},
	},
	"Physical Education (PE)": {
		Focus: "Physical education, sports science, and health",
		Topics: []string{
			"Exercise physiology", "Kinesiology and biomechanics",
			"Motor learning and development", "Sports psychology",
			"Individual and dual sports rules", "Team sports rules and strategies",
			"Philippine traditional games", "Dance and rhythmic activities",
			"Health-related fitness components", "Skill-related fitness components",
			"FITT principle", "First aid and injury prevention",
			"Physical education curriculum", "Assessment in PE",
		},
	},
	"Technology and Livelihood Education (TLE)": {
		Focus: "Technical-vocational skills and entrepreneurship",
		Topics: []string{
			"Entrepreneurship fundamentals", "Business plan development",
			"Marketing basics", "Financial literacy",
			"Home economics (food, clothing, shelter)",
			"Industrial arts", "Information and Communications Technology (ICT)",
			"Agricultural arts", "TESDA competency standards",
		},
	},
	"Culture and Arts Education": {
		Focus: "Visual arts, music, and Philippine cultural heritage",
		Topics: []string{
			"Art elements and principles", "Philippine art history",
			"World art movements", "Music theory basics",
			"Philippine music and musicians", "World music traditions",
			"Performing arts", "Art criticism and appreciation",
			"Cultural heritage preservation",
		},
	},
	"Early Childhood Education (ECE)": {
		Focus: "Early childhood development and education",
		Topics: []string{
			"Child development 0-8 years", "Play-based learning",
			"Developmentally Appropriate Practice (DAP)",
			"Montessori method", "Reggio Emilia approach",
			"HighScope curriculum", "Early literacy development",
			"Early numeracy development", "Social-emotional development",
			"Parent and family involvement", "Assessment in early childhood",
		},
	},
	"Special Needs Education (SNE)": {
		Focus: "Special education and inclusive practices",
		Topics: []string{
			"Categories of exceptionalities", "Intellectual disabilities",
			"Learning disabilities (dyslexia, dyscalculia, dysgraphia)",
			"Autism Spectrum Disorder", "ADHD",
			"Giftedness and talent", "Inclusive education principles",
			"Universal Design for Learning (UDL)", "IEP development",
			"Applied Behavior Analysis (ABA)", "Assistive technology",
			"Transition planning", "RA 7277 - Magna Carta for PWDs",
		},
	},
	"General Education": {
		Focus: "Elementary education general curriculum",
		Topics: []string{
			"Integrated curriculum approaches", "Thematic teaching",
			"Multi-grade teaching", "Spiral curriculum implementation",
			"Teaching reading in the content areas", "Math in elementary grades",
			"Science in elementary grades", "Social Studies in elementary grades",
		},
	},
}

// CompetencyConfig is the competency selection for one generation request.
type CompetencyConfig struct {
	Description string
	Areas       map[string]CompetencyArea
	Instruction string
}

// CompetenciesFor selects the competency areas for an exam component.
// For the specialization component, only the named specialization's area is
// included so the model does not drift into other subjects.
func CompetenciesFor(component, specialization string) CompetencyConfig {
	switch component {
	case ComponentGeneralEducation:
		return CompetencyConfig{
			Description: "General Education covers foundational knowledge in English, Filipino, Mathematics, Science, and Social Studies",
			Areas:       GeneralEducationCompetencies,
			Instruction: "Generate questions covering English, Filipino, Math, Science, and Social Studies fundamentals",
		}
	case ComponentProfessionalEducation:
		return CompetencyConfig{
			Description: "Professional Education covers teaching principles, learning theories, curriculum, assessment, and education laws",
			Areas:       ProfessionalEducationCompetencies,
			Instruction: "Generate questions about educational theories, classroom management, assessment, and Philippine education laws",
		}
	case ComponentSpecialization:
		area, ok := SpecializationCompetencies[specialization]
		focus := area.Focus
		if !ok || focus == "" {
			focus = "Subject-specific content"
		}
		return CompetencyConfig{
			Description: fmt.Sprintf("Specialization in %s: %s", specialization, focus),
			Areas:       map[string]CompetencyArea{specialization: area},
			Instruction: fmt.Sprintf("Generate questions ONLY about %s. Do NOT include questions from other subjects.", specialization),
		}
	}
	return CompetencyConfig{}
}

// maxTopicsPerArea caps the topic list per area when building prompts.
const maxTopicsPerArea = 15

// TopicsList formats the competency areas into the bullet list embedded in
// the generation prompt.
func (c CompetencyConfig) TopicsList() string {
	var b strings.Builder
	for area, data := range c.Areas {
		if len(data.Topics) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", area)
		topics := data.Topics
		if len(topics) > maxTopicsPerArea {
			topics = topics[:maxTopicsPerArea]
		}
		for _, topic := range topics {
			fmt.Fprintf(&b, "  • %s\n", topic)
		}
	}
	return b.String()
}

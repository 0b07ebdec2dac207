package exam

import (
	"math/rand"
	"strings"

	"github.com/lept-reviewer/backend/internal/model"
)

// Preset question bank served to FREE-plan users, aligned to the 2026 PRC
// LEPT competencies. Banks are keyed by lowercase difficulty.

func q(text, a, b, c, d, correct, explanation string) model.Question {
	return model.Question{
		Question:      text,
		Options:       model.QuestionOptions{A: a, B: b, C: c, D: d},
		CorrectAnswer: correct,
		Explanation:   explanation,
	}
}

var generalEducationQuestions = map[string][]model.Question{
	"easy": {
		q("Which of the following sentences is grammatically correct?",
			"The children plays in the park.", "The children play in the park.",
			"The children playing in the park.", "The children is playing in the park.",
			"B", "The subject 'children' is plural, so it requires the plural verb 'play' without the 's'."),
		q("Ano ang kahulugan ng salitang 'mahinahon'?",
			"Magaspang", "Maingay", "Payapa at kalmado", "Mabilis",
			"C", "Ang 'mahinahon' ay nangangahulugang payapa, kalmado, at hindi nagmamadali."),
		q("What is the value of x if 2x + 5 = 15?",
			"5", "10", "7", "3",
			"A", "2x + 5 = 15; 2x = 15 - 5; 2x = 10; x = 5"),
		q("Which planet is known as the 'Red Planet'?",
			"Venus", "Jupiter", "Mars", "Saturn",
			"C", "Mars is called the 'Red Planet' because of its reddish appearance due to iron oxide (rust) on its surface."),
		q("Who is considered the 'Father of the Filipino Nation'?",
			"Jose Rizal", "Andres Bonifacio", "Emilio Aguinaldo", "Apolinario Mabini",
			"B", "Andres Bonifacio is considered the 'Father of the Filipino Nation' for founding the Katipunan and leading the revolution against Spain."),
		q("What is the correct spelling?",
			"Accomodate", "Accommodate", "Acommodate", "Acomodate",
			"B", "The correct spelling is 'accommodate' with double 'c' and double 'm'."),
		q("What is 25% of 200?",
			"25", "50", "75", "100",
			"B", "25% of 200 = 0.25 × 200 = 50"),
		q("What is the process by which plants make their own food?",
			"Respiration", "Transpiration", "Photosynthesis", "Fermentation",
			"C", "Photosynthesis is the process where plants use sunlight, water, and carbon dioxide to produce glucose and oxygen."),
		q("What is the largest organ of the human body?",
			"Heart", "Liver", "Skin", "Brain",
			"C", "The skin is the largest organ of the human body, covering approximately 20 square feet in adults."),
		q("What is the capital city of the Philippines?",
			"Cebu City", "Davao City", "Manila", "Quezon City",
			"C", "Manila is the capital city of the Philippines, though Quezon City is the most populous city in Metro Manila."),
		q("What is the Filipino word for 'thank you'?",
			"Paalam", "Salamat", "Kumusta", "Maganda",
			"B", "Salamat is the Filipino word for 'thank you'."),
		q("How many sides does a hexagon have?",
			"5", "6", "7", "8",
			"B", "A hexagon has 6 sides. The prefix 'hexa-' means six."),
	},
	"medium": {
		q("Which literary device is used in 'The wind whispered through the trees'?",
			"Simile", "Metaphor", "Personification", "Hyperbole",
			"C", "Personification gives human qualities to non-human things. Here, the wind is given the human ability to whisper."),
		q("Ano ang uri ng pangungusap: 'Kumain ka na ba?'",
			"Pasalaysay", "Patanong", "Pautos", "Padamdam",
			"B", "Ang pangungusap na 'Kumain ka na ba?' ay patanong dahil nagtatanong ito at nagtatapos sa tandang pananong."),
		q("If a triangle has angles of 45° and 90°, what is the third angle?",
			"35°", "45°", "55°", "65°",
			"B", "The sum of angles in a triangle is 180°. So, 180° - 45° - 90° = 45°"),
		q("The Philippine Constitution grants sovereignty to whom?",
			"The President", "The Congress", "The Filipino People", "The Supreme Court",
			"C", "Article II, Section 1 of the 1987 Constitution states that sovereignty resides in the people."),
		q("Which sentence uses the correct subject-verb agreement?",
			"Neither the teacher nor the students was present.", "Neither the teacher nor the students were present.",
			"Neither the teacher nor the students is present.", "Neither the teacher nor the students are present.",
			"B", "When using 'neither...nor', the verb agrees with the nearer subject. 'Students' is plural, so 'were' is correct."),
		q("Solve: If 3(x - 2) = 12, what is x?",
			"4", "5", "6", "7",
			"C", "3(x - 2) = 12; x - 2 = 4; x = 6"),
		q("What is the main function of the respiratory system?",
			"To digest food", "To exchange oxygen and carbon dioxide", "To pump blood", "To filter waste",
			"B", "The respiratory system's main function is to facilitate gas exchange - taking in oxygen and expelling carbon dioxide."),
		q("Who wrote the Philippine National Anthem 'Lupang Hinirang'?",
			"Jose Palma", "Julian Felipe", "Both A and B", "Andres Bonifacio",
			"C", "Julian Felipe composed the music, while Jose Palma wrote the Spanish lyrics which were later translated to Filipino."),
		q("What fraction is equivalent to 0.75?",
			"1/2", "2/3", "3/4", "4/5",
			"C", "0.75 = 75/100 = 3/4 when simplified."),
		q("Ano ang kasingkahulugan ng salitang 'maganda'?",
			"Pangit", "Marilag", "Mabaho", "Maliit",
			"B", "Ang 'marilag' ay kasingkahulugan ng 'maganda' na nangangahulugang may kagandahan."),
	},
	"hard": {
		q("Which of the following best exemplifies the concept of 'irony' in literature?",
			"A fire station burning down", "A sad person crying", "A happy person smiling", "A student studying hard",
			"A", "Irony involves a contrast between expectation and reality. A fire station, meant to fight fires, burning down is ironic."),
		q("What is the derivative of f(x) = 3x² + 2x - 5?",
			"6x + 2", "3x + 2", "6x - 5", "6x² + 2",
			"A", "Using the power rule: d/dx(3x²) = 6x, d/dx(2x) = 2, d/dx(-5) = 0. So f'(x) = 6x + 2"),
		q("Which principle explains why ice floats on water?",
			"Archimedes' Principle", "Pascal's Principle", "Bernoulli's Principle", "Newton's Third Law",
			"A", "Archimedes' Principle states that buoyant force equals the weight of displaced fluid. Ice is less dense than water, so it floats."),
		q("The Comprehensive Agrarian Reform Program (CARP) was enacted under which President?",
			"Ferdinand Marcos", "Corazon Aquino", "Fidel Ramos", "Joseph Estrada",
			"B", "CARP was enacted in 1988 under President Corazon Aquino through Republic Act 6657."),
		q("Ano ang tayutay na ginamit sa 'Ang kanyang mga mata ay parang bituin'?",
			"Metapora", "Pagtutulad (Simile)", "Personipikasyon", "Hayperbole",
			"B", "Ang pagtutulad (simile) ay gumagamit ng 'parang', 'tulad ng', o 'gaya ng' upang ihambing ang dalawang bagay."),
		q("What is the speed of light in a vacuum?",
			"3 × 10⁶ m/s", "3 × 10⁸ m/s", "3 × 10¹⁰ m/s", "3 × 10⁴ m/s",
			"B", "The speed of light in a vacuum is approximately 3 × 10⁸ meters per second (about 300,000 km/s)."),
		q("What is the significance of EDSA Revolution in Philippine history?",
			"It ended Spanish colonization", "It peacefully overthrew the Marcos dictatorship",
			"It declared Philippine independence", "It ended Japanese occupation",
			"B", "The 1986 EDSA People Power Revolution peacefully ended the 21-year rule of Ferdinand Marcos through non-violent mass protests."),
		q("In the expression log₁₀(1000), what is the value?",
			"2", "3", "4", "10",
			"B", "log₁₀(1000) = 3 because 10³ = 1000."),
	},
}

var professionalEducationQuestions = map[string][]model.Question{
	"easy": {
		q("Who is known as the 'Father of Modern Education'?",
			"John Dewey", "Jean Piaget", "B.F. Skinner", "Maria Montessori",
			"A", "John Dewey is considered the 'Father of Modern Education' for his progressive educational philosophy emphasizing experiential learning."),
		q("Which of the following is a characteristic of child-centered education?",
			"Teacher lectures while students listen", "Students actively participate in learning",
			"Emphasis on memorization", "Strict discipline and rules",
			"B", "Child-centered education focuses on the needs and interests of students, encouraging active participation."),
		q("What does IEP stand for in special education?",
			"Individual Education Plan", "Inclusive Education Program",
			"Integrated Educational Process", "Individual Evaluation Protocol",
			"A", "IEP stands for Individual Education Plan, a document developed for each student with special needs."),
		q("According to Piaget, at what stage do children develop abstract thinking?",
			"Sensorimotor", "Preoperational", "Concrete Operational", "Formal Operational",
			"D", "The Formal Operational stage (ages 12+) is when children develop abstract and hypothetical thinking."),
		q("What type of assessment is given at the end of a lesson to measure learning?",
			"Diagnostic Assessment", "Formative Assessment", "Summative Assessment", "Placement Assessment",
			"C", "Summative assessment is conducted at the end of instruction to evaluate student learning."),
		q("Which learning theory emphasizes reinforcement and punishment?",
			"Constructivism", "Behaviorism", "Cognitivism", "Humanism",
			"B", "Behaviorism, developed by B.F. Skinner, focuses on observable behaviors and uses reinforcement/punishment."),
		q("What is the K to 12 program in the Philippines?",
			"A feeding program", "An enhanced basic education curriculum",
			"A scholarship program", "A teacher training program",
			"B", "K to 12 refers to the enhanced basic education curriculum covering Kindergarten and 12 years of basic education."),
		q("What is the primary purpose of lesson planning?",
			"To impress the principal", "To guide instruction and ensure learning objectives are met",
			"To satisfy DepEd requirements", "To keep students busy",
			"B", "Lesson planning guides instruction and ensures that learning objectives are systematically achieved."),
		q("What is the role of a teacher as a facilitator?",
			"To lecture and give all the answers", "To guide students in discovering knowledge themselves",
			"To punish students who make mistakes", "To grade papers only",
			"B", "As a facilitator, the teacher guides and supports students in constructing their own understanding."),
		q("What is formative assessment?",
			"Assessment at the end of a semester", "Assessment during instruction to monitor learning",
			"Assessment before instruction begins", "Assessment for college admission",
			"B", "Formative assessment is ongoing assessment during instruction that helps teachers monitor student progress and adjust teaching."),
		q("What does DepEd stand for?",
			"Department of Educational Development", "Department of Education",
			"Division of Education", "Department of Educational Design",
			"B", "DepEd stands for Department of Education, the executive department of the Philippine government responsible for education."),
		q("What is the main goal of inclusive education?",
			"To separate students with disabilities", "To provide equal education opportunities for all learners",
			"To focus only on gifted students", "To exclude difficult students",
			"B", "Inclusive education aims to provide equal educational opportunities for all learners regardless of abilities or backgrounds."),
	},
	"medium": {
		q("According to Vygotsky, what is the Zone of Proximal Development (ZPD)?",
			"What a child can do independently", "What a child cannot do at all",
			"The gap between what a child can do alone and with guidance", "The physical space for learning",
			"C", "ZPD is the difference between what a learner can do without help and what they can achieve with guidance."),
		q("Which of the following best describes 'scaffolding' in teaching?",
			"Building physical structures in classrooms", "Providing temporary support that is gradually removed",
			"Punishing students for mistakes", "Giving students complete freedom",
			"B", "Scaffolding is a teaching method where support is provided and gradually withdrawn as the learner gains competence."),
		q("Bloom's Taxonomy lists cognitive levels. Which is the highest level?",
			"Knowledge", "Application", "Analysis", "Evaluation/Creating",
			"D", "In the revised Bloom's Taxonomy, 'Creating' is the highest level, followed by Evaluating, Analyzing, Applying, Understanding, and Remembering."),
		q("What is differentiated instruction?",
			"Teaching all students the same way", "Adjusting teaching to meet individual student needs",
			"Separating students by ability", "Using only one teaching method",
			"B", "Differentiated instruction involves tailoring teaching to meet the diverse needs of learners in the classroom."),
		q("Which Republic Act is known as the 'Magna Carta for Public School Teachers'?",
			"RA 4670", "RA 7836", "RA 9155", "RA 10533",
			"A", "RA 4670 is the Magna Carta for Public School Teachers, which provides rights and benefits to teachers."),
		q("What is the primary purpose of a rubric in assessment?",
			"To confuse students", "To provide clear criteria for evaluation",
			"To make grading faster", "To replace tests",
			"B", "Rubrics provide clear, consistent criteria for evaluating student work, making assessment more transparent and fair."),
		q("According to Gardner's Multiple Intelligences, how many types of intelligence are there?",
			"5", "7", "8", "10",
			"C", "Howard Gardner originally proposed 7 intelligences and later added an 8th (Naturalistic Intelligence)."),
		q("What teaching strategy involves students teaching other students?",
			"Direct instruction", "Peer tutoring", "Lecture method", "Drill and practice",
			"B", "Peer tutoring involves students helping teach and support each other's learning."),
		q("What is cooperative learning?",
			"Students work individually on tasks", "Students work in groups to achieve common goals",
			"Teacher lectures while students listen", "Competition among students",
			"B", "Cooperative learning involves students working together in small groups to accomplish shared learning goals."),
		q("What is the purpose of diagnostic assessment?",
			"To grade students at the end of the year", "To identify students' prior knowledge and learning gaps",
			"To punish poor performers", "To rank students",
			"B", "Diagnostic assessment is conducted before instruction to determine students' existing knowledge, skills, and learning needs."),
		q("Which Republic Act is known as the 'Enhanced Basic Education Act of 2013'?",
			"RA 7836", "RA 9155", "RA 10533", "RA 4670",
			"C", "RA 10533, the Enhanced Basic Education Act of 2013, mandates the K to 12 Basic Education Program."),
		q("What is authentic assessment?",
			"Multiple choice tests only", "Assessment that measures real-world application of knowledge",
			"Memorization tests", "Standardized testing",
			"B", "Authentic assessment evaluates students' abilities to apply knowledge and skills in real-world situations."),
	},
	"hard": {
		q("Which educational philosophy believes that education should focus on the whole child?",
			"Essentialism", "Perennialism", "Progressivism", "Existentialism",
			"C", "Progressivism, influenced by John Dewey, emphasizes educating the whole child including social and emotional development."),
		q("What is the main principle of Universal Design for Learning (UDL)?",
			"One-size-fits-all approach", "Multiple means of engagement, representation, and expression",
			"Focus only on students with disabilities", "Using technology exclusively",
			"B", "UDL provides multiple means of engagement, representation, and action/expression to address learner variability."),
		q("According to Erikson's psychosocial theory, what is the crisis faced by adolescents?",
			"Trust vs. Mistrust", "Initiative vs. Guilt", "Identity vs. Role Confusion", "Integrity vs. Despair",
			"C", "Adolescents (12-18 years) face the crisis of Identity vs. Role Confusion as they develop a sense of self."),
		q("Which of the following is NOT a principle of constructivism?",
			"Learning is an active process", "Knowledge is constructed by the learner",
			"Learning is passive absorption of information", "Prior knowledge affects new learning",
			"C", "Constructivism views learning as active, not passive. Learners construct knowledge through experiences."),
		q("What is the Philippine Professional Standards for Teachers (PPST)?",
			"A salary grading system", "A framework defining teacher quality",
			"A building code for schools", "A retirement plan",
			"B", "PPST defines the competencies expected of effective teachers across different career stages."),
		q("Kohlberg's theory of moral development includes how many stages?",
			"4", "5", "6", "8",
			"C", "Kohlberg proposed 6 stages of moral development grouped into 3 levels: pre-conventional, conventional, and post-conventional."),
		q("What is the Code of Ethics for Professional Teachers in the Philippines?",
			"RA 7836", "RA 4670", "RA 9155", "Board Resolution No. 435",
			"A", "RA 7836, the Philippine Teachers Professionalization Act of 1994, includes the Code of Ethics for Professional Teachers."),
		q("What is Bandura's Social Learning Theory primarily about?",
			"Learning through operant conditioning", "Learning through observation and modeling",
			"Learning through classical conditioning", "Learning through punishment only",
			"B", "Bandura's Social Learning Theory emphasizes that people learn by observing and imitating others' behaviors."),
		q("What is the theory of Meaningful Learning associated with David Ausubel?",
			"Learning through rote memorization", "Connecting new information to existing knowledge structures",
			"Learning through trial and error", "Learning only through direct experience",
			"B", "Ausubel's Meaningful Learning Theory states that new learning is most effective when connected to relevant prior knowledge."),
		q("What are the domains in PPST?",
			"5 domains", "6 domains", "7 domains", "8 domains",
			"C", "PPST has 7 domains: Content Knowledge, Learning Environment, Diversity of Learners, Curriculum and Planning, Assessment and Reporting, Community Linkages, and Personal Growth."),
	},
}

var specializationQuestions = map[string]map[string][]model.Question{
	"Science": {
		"easy": {
			q("What is the basic unit of life?",
				"Atom", "Cell", "Molecule", "Organ",
				"B", "The cell is the basic structural and functional unit of all living organisms."),
			q("What type of energy does the sun provide?",
				"Mechanical energy", "Chemical energy", "Solar/Radiant energy", "Nuclear energy",
				"C", "The sun provides solar or radiant energy through electromagnetic radiation."),
			q("What is the chemical symbol for water?",
				"H2O", "CO2", "NaCl", "O2",
				"A", "Water is composed of two hydrogen atoms and one oxygen atom, hence H2O."),
			q("Which planet is closest to the sun?",
				"Venus", "Earth", "Mercury", "Mars",
				"C", "Mercury is the closest planet to the sun in our solar system."),
			q("What is the function of the heart?",
				"To digest food", "To pump blood", "To filter waste", "To produce hormones",
				"B", "The heart's primary function is to pump blood throughout the body."),
		},
		"medium": {
			q("What is the law of conservation of mass?",
				"Mass can be created", "Mass can be destroyed",
				"Mass is neither created nor destroyed in a chemical reaction", "Mass always increases",
				"C", "The law of conservation of mass states that mass cannot be created or destroyed in a chemical reaction."),
			q("What organelle is responsible for cellular respiration?",
				"Nucleus", "Ribosome", "Mitochondria", "Golgi body",
				"C", "Mitochondria are the 'powerhouses' of the cell, responsible for cellular respiration and ATP production."),
			q("What is Newton's First Law of Motion?",
				"F = ma", "For every action, there is an equal and opposite reaction",
				"An object at rest stays at rest unless acted upon by a force", "Energy cannot be created or destroyed",
				"C", "Newton's First Law (Law of Inertia) states that an object will remain at rest or in uniform motion unless acted upon by an external force."),
			q("What is the pH of a neutral solution?",
				"0", "7", "14", "1",
				"B", "A neutral solution has a pH of 7. Below 7 is acidic, above 7 is basic."),
			q("What type of bond is formed when electrons are shared between atoms?",
				"Ionic bond", "Covalent bond", "Metallic bond", "Hydrogen bond",
				"B", "Covalent bonds are formed when atoms share electrons."),
		},
		"hard": {
			q("What is the function of mRNA in protein synthesis?",
				"To store genetic information", "To carry genetic instructions from DNA to ribosomes",
				"To transport amino acids", "To form ribosomes",
				"B", "mRNA (messenger RNA) carries genetic instructions from DNA in the nucleus to ribosomes for protein synthesis."),
			q("What is the relationship between wavelength and frequency of electromagnetic waves?",
				"Directly proportional", "Inversely proportional", "No relationship", "Equal",
				"B", "Wavelength and frequency are inversely proportional. As wavelength increases, frequency decreases (c = λf)."),
			q("What is the process of cell division that produces gametes?",
				"Mitosis", "Meiosis", "Binary fission", "Cytokinesis",
				"B", "Meiosis is the cell division process that produces gametes (sex cells) with half the chromosome number."),
		},
	},
	"Mathematics": {
		"easy": {
			q("What is the formula for the area of a rectangle?",
				"A = πr²", "A = length × width", "A = ½bh", "A = s²",
				"B", "The area of a rectangle is calculated by multiplying its length by its width."),
			q("What is the value of π (pi) approximately equal to?",
				"3.14", "2.71", "1.41", "1.73",
				"A", "Pi (π) is approximately equal to 3.14159, commonly rounded to 3.14."),
			q("What is 15% of 80?",
				"10", "12", "15", "8",
				"B", "15% of 80 = 0.15 × 80 = 12"),
			q("What is the next number in the sequence: 2, 4, 8, 16, ___?",
				"20", "24", "32", "18",
				"C", "This is a geometric sequence where each number is multiplied by 2. 16 × 2 = 32."),
		},
		"medium": {
			q("What is the Pythagorean theorem?",
				"a + b = c", "a² + b² = c²", "a × b = c", "a - b = c",
				"B", "The Pythagorean theorem states that in a right triangle, a² + b² = c², where c is the hypotenuse."),
			q("What is the slope-intercept form of a linear equation?",
				"ax + by = c", "y = mx + b", "y - y₁ = m(x - x₁)", "(y₂-y₁)/(x₂-x₁)",
				"B", "The slope-intercept form is y = mx + b, where m is the slope and b is the y-intercept."),
			q("What is the quadratic formula?",
				"x = -b/2a", "x = (-b ± √(b²-4ac))/2a", "x = b² - 4ac", "x = a + b + c",
				"B", "The quadratic formula x = (-b ± √(b²-4ac))/2a is used to solve quadratic equations ax² + bx + c = 0."),
			q("What is the sum of interior angles of a triangle?",
				"90°", "180°", "270°", "360°",
				"B", "The sum of interior angles of any triangle is always 180 degrees."),
		},
		"hard": {
			q("What is the derivative of sin(x)?",
				"-sin(x)", "cos(x)", "-cos(x)", "tan(x)",
				"B", "The derivative of sin(x) is cos(x). This is a fundamental calculus identity."),
			q("What is the integral of 2x?",
				"x²", "x² + C", "2", "2x² + C",
				"B", "The integral of 2x is x² + C, where C is the constant of integration."),
			q("In a geometric sequence, if a₁ = 3 and r = 2, what is a₅?",
				"24", "48", "96", "15",
				"B", "For a geometric sequence, aₙ = a₁ × r^(n-1). So a₅ = 3 × 2⁴ = 3 × 16 = 48."),
		},
	},
	"English": {
		"easy": {
			q("What is a noun?",
				"An action word", "A describing word",
				"A naming word for person, place, thing, or idea", "A connecting word",
				"C", "A noun is a word that names a person, place, thing, or idea."),
			q("Which sentence is in passive voice?",
				"The cat chased the mouse.", "The mouse was chased by the cat.",
				"She runs every morning.", "They built a house.",
				"B", "In passive voice, the subject receives the action. 'The mouse was chased by the cat' is passive."),
			q("What is the plural of 'child'?",
				"Childs", "Children", "Childes", "Child's",
				"B", "'Child' has an irregular plural form: 'children'."),
		},
		"medium": {
			q("What literary period does William Shakespeare belong to?",
				"Victorian Era", "Elizabethan Era", "Romantic Period", "Modern Period",
				"B", "Shakespeare wrote during the Elizabethan Era (1558-1603), named after Queen Elizabeth I."),
			q("What is the difference between denotation and connotation?",
				"Denotation is emotional; connotation is literal",
				"Denotation is literal meaning; connotation is associated/emotional meaning",
				"They are the same", "Connotation is found in dictionaries",
				"B", "Denotation is the literal dictionary meaning, while connotation includes emotional or cultural associations."),
			q("What is an oxymoron?",
				"Comparing unlike things using 'like' or 'as'", "Exaggeration for effect",
				"Combining contradictory terms", "Repeating initial sounds",
				"C", "An oxymoron combines two contradictory terms, such as 'jumbo shrimp' or 'deafening silence'."),
		},
		"hard": {
			q("Which literary movement emphasized emotion and individualism over reason?",
				"Neoclassicism", "Romanticism", "Realism", "Modernism",
				"B", "Romanticism (late 18th-19th century) emphasized emotion, imagination, and individualism over rationalism."),
			q("What is the term for a word that sounds like what it describes?",
				"Alliteration", "Onomatopoeia", "Assonance", "Consonance",
				"B", "Onomatopoeia refers to words that imitate sounds, like 'buzz', 'hiss', or 'splash'."),
		},
	},
	"Filipino": {
		"easy": {
			q("Ano ang pangunahing layunin ng panitikang Filipino?",
				"Maglibang lamang", "Magpahayag ng damdamin at kaisipan", "Kumita ng pera", "Maging sikat",
				"B", "Ang panitikan ay nagsisilbing daluyan ng pagpapahayag ng damdamin, kaisipan, at karanasan."),
			q("Ano ang tawag sa salitang may magkaparehong baybay ngunit magkaiba ang kahulugan?",
				"Magkasingkahulugan", "Magkasalungat", "Homonym", "Antonym",
				"C", "Ang homonym ay mga salitang magkapareho ang baybay ngunit magkaiba ang kahulugan."),
		},
		"medium": {
			q("Sino ang itinuturing na 'Ama ng Wikang Pambansa'?",
				"Jose Rizal", "Manuel L. Quezon", "Andres Bonifacio", "Marcelo H. del Pilar",
				"B", "Si Manuel L. Quezon ang itinuturing na 'Ama ng Wikang Pambansa' dahil sa kanyang pagsisikap na magkaroon ng pambansang wika."),
			q("Ano ang tawag sa tayutay na nagbibigay ng katangiang pantao sa bagay na walang buhay?",
				"Pagtutulad", "Metapora", "Personipikasyon", "Hayperbole",
				"C", "Ang personipikasyon ay nagbibigay ng katangiang pantao sa mga bagay na walang buhay."),
		},
		"hard": {
			q("Ano ang pinakamahalagang akda ni Jose Rizal na nagpagising sa kamalayan ng mga Pilipino?",
				"Florante at Laura", "Noli Me Tangere", "El Filibusterismo", "Parehong B at C",
				"D", "Ang Noli Me Tangere at El Filibusterismo ni Rizal ay parehong nagpagising sa kamalayan ng mga Pilipino laban sa pang-aapi ng mga Kastila."),
		},
	},
	"Social Studies": {
		"easy": {
			q("What are the three branches of the Philippine government?",
				"Executive, Legislative, Judicial", "President, Senate, Court",
				"National, Local, Federal", "Barangay, Municipal, Provincial",
				"A", "The three branches are Executive (implements laws), Legislative (makes laws), and Judicial (interprets laws)."),
			q("Who was the first President of the Philippines?",
				"Manuel L. Quezon", "Emilio Aguinaldo", "Jose Rizal", "Sergio Osmeña",
				"B", "Emilio Aguinaldo was the first President of the Philippines, serving from 1899-1901."),
		},
		"medium": {
			q("What economic system allows private ownership and free markets?",
				"Communism", "Socialism", "Capitalism", "Feudalism",
				"C", "Capitalism is characterized by private ownership of the means of production and free market competition."),
			q("What is the significance of the Treaty of Paris (1898)?",
				"It granted Philippine independence", "Spain ceded the Philippines to the United States",
				"It ended World War II", "It established the Philippine Republic",
				"B", "The Treaty of Paris ended the Spanish-American War, with Spain ceding the Philippines to the US for $20 million."),
		},
		"hard": {
			q("What does ASEAN stand for?",
				"Asian Social and Economic Alliance Network", "Association of Southeast Asian Nations",
				"Allied States of East Asian Nations", "Asian Security and Economic Agreement Network",
				"B", "ASEAN stands for Association of Southeast Asian Nations, founded in 1967."),
		},
	},
	"Values Education": {
		"easy": {
			q("What Filipino value emphasizes respect for elders?",
				"Bayanihan", "Pagmamano", "Pakikisama", "Utang na loob",
				"B", "Pagmamano (blessing from elders) is a Filipino gesture showing respect for older people."),
			q("What is the meaning of 'bayanihan'?",
				"Individual achievement", "Community cooperation and helping neighbors",
				"Government assistance", "Religious devotion",
				"B", "Bayanihan refers to the Filipino spirit of communal unity and cooperation."),
		},
		"medium": {
			q("According to Kohlberg, at which level do people follow rules to gain approval?",
				"Pre-conventional level", "Conventional level", "Post-conventional level", "Universal level",
				"B", "At the conventional level, individuals follow rules to maintain social order and gain approval from others."),
		},
		"hard": {
			q("What is the highest level in Maslow's hierarchy of needs?",
				"Safety needs", "Belongingness", "Esteem", "Self-actualization",
				"D", "Self-actualization is the highest level, representing the need to fulfill one's potential."),
		},
	},
	"Physical Education (PE)": {
		"easy": {
			q("What is the primary benefit of regular physical activity?",
				"Improved physical and mental health", "Becoming famous", "Avoiding homework", "Staying indoors",
				"A", "Regular physical activity improves cardiovascular health, strength, flexibility, and mental well-being."),
		},
		"medium": {
			q("What are the components of health-related fitness?",
				"Speed, agility, power",
				"Cardiovascular endurance, muscular strength, flexibility, body composition, muscular endurance",
				"Balance, coordination, reaction time", "Running, jumping, throwing",
				"B", "Health-related fitness includes cardiovascular endurance, muscular strength, muscular endurance, flexibility, and body composition."),
			q("What is the FITT principle?",
				"Fast, Intense, Tough, Tiring", "Frequency, Intensity, Time, Type",
				"Fun, Interesting, Thrilling, Therapeutic", "Fit, Important, Trendy, Tested",
				"B", "FITT stands for Frequency, Intensity, Time, and Type - key principles for exercise programs."),
		},
		"hard": {
			q("What is the target heart rate zone for moderate exercise?",
				"50-70% of maximum heart rate", "70-85% of maximum heart rate",
				"85-95% of maximum heart rate", "30-50% of maximum heart rate",
				"A", "Moderate exercise is typically performed at 50-70% of maximum heart rate."),
		},
	},
	"Technology and Livelihood Education (TLE)": {
		"easy": {
			q("What is the primary goal of TLE education?",
				"Academic excellence only", "Developing practical and vocational skills",
				"Sports training", "Art appreciation",
				"B", "TLE aims to develop practical, vocational, and entrepreneurial skills for livelihood."),
		},
		"medium": {
			q("What does TESDA stand for?",
				"Technical Education and Skills Development Authority", "Teacher Education Standards Development Agency",
				"Technology and Engineering Skills Department Authority", "Training and Employment Services Development Authority",
				"A", "TESDA stands for Technical Education and Skills Development Authority."),
		},
		"hard": {
			q("What is the purpose of a business plan in entrepreneurship?",
				"To impress friends", "To serve as a roadmap for business operations and secure funding",
				"To fulfill government requirements only", "To avoid paying taxes",
				"B", "A business plan serves as a strategic roadmap for business operations and is essential for securing funding."),
		},
	},
	"Culture and Arts Education": {
		"easy": {
			q("What is the national dance of the Philippines?",
				"Tinikling", "Carinosa", "Pandanggo sa Ilaw", "Maglalatik",
				"A", "Tinikling is considered the national dance of the Philippines."),
		},
		"medium": {
			q("Who painted the famous 'Spoliarium'?",
				"Fernando Amorsolo", "Juan Luna", "Damian Domingo", "Felix Resurreccion Hidalgo",
				"B", "Juan Luna painted the famous 'Spoliarium' which won the gold medal at the Madrid Exposition in 1884."),
		},
		"hard": {
			q("What artistic movement influenced Juan Luna's 'Spoliarium'?",
				"Impressionism", "Romanticism and Realism", "Cubism", "Abstract Expressionism",
				"B", "Luna's 'Spoliarium' was influenced by Romanticism and Realism."),
		},
	},
	"Early Childhood Education (ECE)": {
		"easy": {
			q("What is the recommended age range for Early Childhood Education?",
				"0-3 years", "0-8 years", "3-6 years", "6-12 years",
				"B", "ECE typically covers children from birth to 8 years old."),
		},
		"medium": {
			q("What is the primary focus of the Montessori method?",
				"Teacher-directed learning", "Child-led learning with prepared environment",
				"Memorization and drills", "Competitive activities",
				"B", "Montessori emphasizes child-led learning in a carefully prepared environment."),
		},
		"hard": {
			q("What does the Reggio Emilia approach consider as the 'third teacher'?",
				"The parent", "Technology", "The environment", "Textbooks",
				"C", "In Reggio Emilia, the environment is considered the 'third teacher'."),
		},
	},
	"Special Needs Education (SNE)": {
		"easy": {
			q("What does SPED stand for?",
				"Special Physical Education Department", "Special Education",
				"Standard Pedagogy and Education", "Student Performance Evaluation Data",
				"B", "SPED stands for Special Education."),
		},
		"medium": {
			q("What is the main goal of inclusive education?",
				"Separating students with disabilities", "Including all students in regular classrooms",
				"Creating special schools only", "Limiting enrollment",
				"B", "Inclusive education aims to include all learners, including those with disabilities, in regular classrooms."),
		},
		"hard": {
			q("What is Applied Behavior Analysis (ABA) primarily used for?",
				"Teaching mathematics", "Intervention for autism spectrum disorder",
				"Physical therapy", "Speech therapy only",
				"B", "ABA is an evidence-based intervention commonly used for children with autism spectrum disorder."),
		},
	},
	"General Education": {
		"easy": {
			q("What is the spiral approach in curriculum?",
				"Teaching topics once and moving on", "Revisiting topics with increasing complexity",
				"Teaching in circles", "Random topic selection",
				"B", "The spiral approach revisits topics repeatedly with greater depth each time."),
		},
		"medium": {
			q("What is thematic instruction?",
				"Teaching subjects separately", "Integrating subjects around a central theme",
				"Using textbooks only", "Focusing on one subject",
				"B", "Thematic instruction integrates multiple subjects around a central theme."),
		},
		"hard": {
			q("According to MTB-MLE policy, what is the medium of instruction for K-3?",
				"English only", "Filipino only", "Mother Tongue", "Any foreign language",
				"C", "MTB-MLE uses the learner's mother tongue as the primary medium of instruction for K-3."),
		},
	},
}

// specializationAliases maps specializations without their own bank to a
// close equivalent.
var specializationAliases = map[string]string{
	"Technical-Vocational Teacher Education (TVTE)": "Technology and Livelihood Education (TLE)",
}

// AlignedPresetQuestions returns preset questions matching the exam
// configuration. The pool for the requested difficulty is used first; when
// it holds fewer than n items, the other difficulty buckets of the same
// component are added before shuffling. At most n questions are returned.
func AlignedPresetQuestions(component, specialization, difficulty string, n int) []model.Question {
	key := strings.ToLower(difficulty)

	var source map[string][]model.Question
	switch component {
	case ComponentGeneralEducation:
		source = generalEducationQuestions
	case ComponentProfessionalEducation:
		source = professionalEducationQuestions
	case ComponentSpecialization:
		source = specializationQuestions[specialization]
		if len(source[key]) == 0 {
			if alias, ok := specializationAliases[specialization]; ok {
				source = specializationQuestions[alias]
			}
		}
	}
	if source == nil {
		return nil
	}

	pool := make([]model.Question, 0, n)
	pool = append(pool, source[key]...)

	if len(pool) < n {
		for _, diff := range []string{"easy", "medium", "hard"} {
			if diff != key {
				pool = append(pool, source[diff]...)
			}
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// MixedPresetQuestions returns questions from all three components using
// the exam's 20/40/40 weight distribution.
func MixedPresetQuestions(specialization, difficulty string, n int) []model.Question {
	genedCount := int(float64(n) * 0.2)
	if genedCount < 1 {
		genedCount = 1
	}
	profedCount := int(float64(n) * 0.4)
	if profedCount < 1 {
		profedCount = 1
	}
	specCount := n - genedCount - profedCount

	questions := make([]model.Question, 0, n)
	questions = append(questions, AlignedPresetQuestions(ComponentGeneralEducation, specialization, difficulty, genedCount)...)
	questions = append(questions, AlignedPresetQuestions(ComponentProfessionalEducation, specialization, difficulty, profedCount)...)
	if specialization != "" && specCount > 0 {
		questions = append(questions, AlignedPresetQuestions(ComponentSpecialization, specialization, difficulty, specCount)...)
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions
}

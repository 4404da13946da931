package domain

// seedConfigs are the built-in domain configurations. Domains outside
// this list fall back to a generated generic config.
var seedConfigs = []Config{
	{
		Key:                     "economics",
		DisplayName:             "Economics",
		LearningCharacteristics: []string{"quantitative analysis", "policy implications", "market dynamics"},
		ContentTypes:            []string{"concepts", "models", "case studies", "calculations", "charts"},
		CareerApplications:      []string{"consulting", "finance", "policy analysis", "business strategy"},
		VisualizationTypes:      []string{"line charts", "bar charts", "scatter plots", "economic models"},
		AssessmentMethods:       []string{"multiple_choice", "case_analysis", "problem_solving", "policy evaluation"},
		ExtractionInstructions: `- Focus on market applications, policy implications, and business strategy
- Include quantitative analysis and data interpretation
- Use current economic events and business cases
- Emphasize career paths: consulting, finance, policy analysis, business analysis
- Include interactive economic models and calculations
- Connect macroeconomic and microeconomic principles
- Show real-world market examples and company case studies`,
		QAGuidelines: `- Provide quantitative examples with real economic data
- Connect concepts to current market conditions and policy debates
- Include career applications in consulting, finance, and business
- Use business case studies and company examples
- Explain mathematical relationships and economic models
- Reference current economic research and trends`,
		QuizRequirements: `- Include scenario-based questions using real companies and markets
- Test quantitative reasoning with economic calculations
- Ask about policy implications and business applications
- Include questions about economic model interpretation
- Test understanding of cause-and-effect relationships in markets`,
		SimplificationGuidelines: `- Use business analogies and market examples
- Break down mathematical models into logical steps
- Connect abstract concepts to everyday economic decisions
- Use current events and recognizable company examples
- Explain the "why" behind economic relationships`,
		VisualizationGuidelines: `- Create interactive supply/demand curves and market models
- Use professional business color schemes (blues, greens)
- Include economic indicators and trend analysis charts
- Show cause-and-effect relationships with flow diagrams
- Make charts suitable for business presentations`,
	},
	{
		Key:                     "computer_science",
		DisplayName:             "Computer Science",
		LearningCharacteristics: []string{"hands-on coding", "algorithm thinking", "system design"},
		ContentTypes:            []string{"concepts", "algorithms", "code examples", "system designs", "case studies"},
		CareerApplications:      []string{"software development", "data science", "system architecture", "cybersecurity"},
		VisualizationTypes:      []string{"flowcharts", "system diagrams", "algorithm visualizations", "network diagrams"},
		AssessmentMethods:       []string{"coding problems", "system design", "algorithm analysis", "debugging"},
		ExtractionInstructions: `- Include code examples and algorithm visualizations
- Focus on practical implementation and system design
- Use current technology trends and industry practices
- Emphasize career paths: software development, data science, system architecture
- Include interactive coding exercises and technical diagrams
- Connect theoretical concepts to real-world software systems
- Show examples from major tech companies and open source projects`,
		QAGuidelines: `- Provide code examples in popular programming languages
- Explain algorithms with step-by-step breakdowns
- Include system design considerations and trade-offs
- Reference current technology stacks and industry practices
- Connect concepts to real software engineering challenges
- Suggest hands-on projects and coding exercises`,
		QuizRequirements: `- Include algorithm analysis and complexity questions
- Test system design and architecture understanding
- Ask about debugging and problem-solving approaches
- Include code reading and interpretation questions
- Test knowledge of current technologies and frameworks`,
		SimplificationGuidelines: `- Use coding analogies and programming metaphors
- Break down algorithms into pseudo-code steps
- Connect abstract concepts to familiar software applications
- Use examples from popular apps and websites
- Explain the practical benefits of different approaches`,
		VisualizationGuidelines: `- Create interactive algorithm step-through animations
- Use technical color schemes suitable for developers
- Include system architecture and data flow diagrams
- Show code structure and class relationship diagrams
- Make visualizations that developers would use professionally`,
	},
	{
		Key:                     "mathematics",
		DisplayName:             "Mathematics",
		LearningCharacteristics: []string{"logical reasoning", "problem solving", "proof construction"},
		ContentTypes:            []string{"theorems", "proofs", "problem sets", "geometric interpretations", "applications"},
		CareerApplications:      []string{"data analysis", "engineering", "finance", "research", "teaching"},
		VisualizationTypes:      []string{"graphs", "geometric diagrams", "function plots", "statistical charts"},
		AssessmentMethods:       []string{"problem_solving", "proof_writing", "application_problems", "concept_explanation"},
		ExtractionInstructions: `- Provide step-by-step problem solving approaches
- Include visual proofs and geometric interpretations
- Focus on applications in science, engineering, and finance
- Emphasize logical reasoning and mathematical thinking
- Include interactive formula calculators and geometric visualizations
- Connect pure mathematics to practical applications
- Show historical context and mathematical discoveries`,
		QAGuidelines: `- Break down complex problems into manageable steps
- Provide multiple solution approaches when possible
- Include geometric or visual interpretations
- Connect mathematical concepts to real-world applications
- Explain the intuition behind mathematical relationships
- Suggest practice problems and further exploration`,
		QuizRequirements: `- Include multi-step problem-solving questions
- Test conceptual understanding, not just computation
- Ask about applications in various fields
- Include proof-based and reasoning questions
- Test ability to connect different mathematical concepts`,
		SimplificationGuidelines: `- Use visual and geometric analogies
- Break complex proofs into logical building blocks
- Connect abstract concepts to concrete examples
- Use real-world applications to motivate concepts
- Explain the "why" behind mathematical procedures`,
		VisualizationGuidelines: `- Create interactive function plotters and geometric tools
- Use mathematical color conventions and clear labeling
- Include step-by-step proof visualizations
- Show geometric interpretations of algebraic concepts
- Make tools suitable for mathematical exploration`,
	},
	{
		Key:                     "psychology",
		DisplayName:             "Psychology",
		LearningCharacteristics: []string{"case study analysis", "research methodology", "behavioral observation"},
		ContentTypes:            []string{"theories", "case studies", "research findings", "assessments", "applications"},
		CareerApplications:      []string{"clinical psychology", "research", "organizational psychology", "counseling"},
		VisualizationTypes:      []string{"behavioral charts", "research diagrams", "brain maps", "statistical plots"},
		AssessmentMethods:       []string{"case_analysis", "research_design", "theory_application", "ethical_scenarios"},
		ExtractionInstructions: `- Include case studies and behavioral examples
- Focus on research methodology and data interpretation
- Use contemporary psychological research and applications
- Emphasize career paths: clinical, research, organizational psychology
- Include interactive assessments and behavioral visualizations
- Connect theories to everyday human behavior
- Show examples from clinical and applied settings`,
		QAGuidelines: `- Provide case study examples and behavioral scenarios
- Explain research methodology and statistical concepts
- Include ethical considerations and professional applications
- Reference current psychological research and findings
- Connect theories to practical therapeutic and organizational contexts
- Suggest ways to observe and apply concepts in daily life`,
		QuizRequirements: `- Include case study analysis questions
- Test understanding of research design and methodology
- Ask about ethical considerations in psychological practice
- Include questions about theory application to real situations
- Test knowledge of assessment tools and interventions`,
		SimplificationGuidelines: `- Use relatable human behavior examples
- Connect theories to everyday psychological experiences
- Break down research concepts into practical terms
- Use case studies from diverse populations
- Explain the practical implications of psychological findings`,
		VisualizationGuidelines: `- Create behavioral pattern charts and assessment tools
- Use professional clinical color schemes
- Include research data visualization and statistical charts
- Show psychological process diagrams and flow charts
- Make visualizations suitable for clinical and research contexts`,
	},
	{
		Key:                     "business",
		DisplayName:             "Business",
		LearningCharacteristics: []string{"strategic thinking", "case analysis", "decision making"},
		ContentTypes:            []string{"case studies", "frameworks", "financial models", "strategy tools", "market analysis"},
		CareerApplications:      []string{"management", "consulting", "entrepreneurship", "finance", "marketing"},
		VisualizationTypes:      []string{"business models", "financial charts", "strategy diagrams", "process flows"},
		AssessmentMethods:       []string{"case_analysis", "strategic_planning", "financial_modeling", "presentation"},
		ExtractionInstructions: `- Include business cases and strategic scenarios
- Focus on decision-making frameworks and analysis
- Use current market examples and company studies
- Emphasize leadership, strategy, and operational excellence
- Include interactive business models and financial calculators
- Connect theories to real business challenges and opportunities
- Show examples from various industries and company sizes`,
		QAGuidelines: `- Provide business case examples and strategic scenarios
- Explain frameworks with practical application steps
- Include financial analysis and market considerations
- Reference current business trends and company examples
- Connect concepts to leadership and management challenges
- Suggest ways to apply learning in professional settings`,
		QuizRequirements: `- Include business case analysis questions
- Test strategic thinking and decision-making skills
- Ask about financial analysis and market evaluation
- Include questions about leadership and management scenarios
- Test understanding of business frameworks and tools`,
		SimplificationGuidelines: `- Use recognizable company examples and business scenarios
- Connect frameworks to everyday business decisions
- Break down complex strategies into actionable steps
- Use current market events and business news
- Explain the practical benefits of business tools and concepts`,
		VisualizationGuidelines: `- Create interactive business model canvases and strategy tools
- Use professional business color schemes and formatting
- Include financial dashboards and performance metrics
- Show organizational charts and process flow diagrams
- Make visualizations suitable for business presentations`,
	},
}

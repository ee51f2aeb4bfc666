package criteria

// conditions is the built-in criteria database. Entries are ordered;
// ranking ties preserve this order. The data is immutable reference
// material shared read-only across all analyses.
var conditions = []Condition{
	{
		Name:     "Borderline Personality Disorder",
		Section:  "Personality Disorders",
		DSMPage:  663,
		PDFPage:  705,
		Required: 5, // 5 of 9
		Criteria: []Criterion{
			{
				ID:   "A1",
				Text: "Frantic efforts to avoid real or imagined abandonment",
				Indicators: []string{
					"panic when someone doesn't respond",
					"excessive reassurance seeking",
					"threats when feeling abandoned",
					"drastic measures to prevent separation",
					"fear of being alone",
					"clinging behavior",
				},
			},
			{
				ID:   "A2",
				Text: "Pattern of unstable and intense interpersonal relationships characterized by alternating between extremes of idealization and devaluation",
				Indicators: []string{
					"rapidly changing opinions of others",
					"splitting",
					"all good vs all bad",
					"intense but unstable relationships",
					"idealization followed by devaluation",
					"you're perfect",
					"you're terrible",
				},
			},
			{
				ID:   "A3",
				Text: "Identity disturbance: markedly and persistently unstable self-image or sense of self",
				Indicators: []string{
					"don't know who I am",
					"changing goals",
					"confusion about identity",
					"feelings of emptiness about self",
					"who am I",
				},
			},
			{
				ID:   "A4",
				Text: "Impulsivity in at least two areas that are potentially self-damaging",
				Indicators: []string{
					"impulsive spending",
					"substance use",
					"reckless",
					"binge eating",
					"risky",
					"just did it without thinking",
				},
			},
			{
				ID:   "A5",
				Text: "Recurrent suicidal behavior, gestures, or threats, or self-mutilating behavior",
				Indicators: []string{
					"want to die",
					"self-harm",
					"cutting",
					"suicidal",
					"kill myself",
					"end it all",
				},
			},
			{
				ID:   "A6",
				Text: "Affective instability due to a marked reactivity of mood",
				Indicators: []string{
					"mood swings",
					"up and down",
					"irritable",
					"extreme reactions",
					"emotional roller coaster",
				},
			},
			{
				ID:   "A7",
				Text: "Chronic feelings of emptiness",
				Indicators: []string{
					"feel empty",
					"hollow",
					"void",
					"nothing inside",
					"bored all the time",
				},
			},
			{
				ID:   "A8",
				Text: "Inappropriate, intense anger or difficulty controlling anger",
				Indicators: []string{
					"rage",
					"can't control anger",
					"explosive",
					"angry all the time",
					"lost it",
					"seeing red",
				},
			},
			{
				ID:   "A9",
				Text: "Transient, stress-related paranoid ideation or severe dissociative symptoms",
				Indicators: []string{
					"everyone's against me",
					"feel unreal",
					"dissociate",
					"paranoid",
					"out of body",
				},
			},
		},
	},
	{
		Name:     "Major Depressive Disorder",
		Section:  "Depressive Disorders",
		Duration: "2 weeks",
		DSMPage:  160,
		PDFPage:  202,
		Required: 5,
		Criteria: []Criterion{
			{
				ID:   "A1",
				Text: "Depressed mood most of the day, nearly every day",
				Indicators: []string{
					"feeling sad",
					"empty",
					"hopeless",
					"depressed",
					"down",
					"can't be happy",
				},
			},
			{
				ID:   "A2",
				Text: "Markedly diminished interest or pleasure in activities",
				Indicators: []string{
					"lost interest",
					"nothing is fun",
					"don't enjoy",
					"no motivation",
					"anhedonia",
				},
			},
			{
				ID:   "A3",
				Text: "Significant weight/appetite changes",
				Indicators: []string{
					"lost weight",
					"gained weight",
					"no appetite",
					"eating too much",
				},
			},
			{
				ID:   "A4",
				Text: "Insomnia or hypersomnia",
				Indicators: []string{
					"can't sleep",
					"sleeping too much",
					"insomnia",
					"sleep all day",
				},
			},
			{
				ID:   "A5",
				Text: "Psychomotor changes",
				Indicators: []string{
					"restless",
					"can't sit still",
					"moving slowly",
					"everything takes effort",
				},
			},
			{
				ID:   "A6",
				Text: "Fatigue or loss of energy",
				Indicators: []string{
					"tired",
					"no energy",
					"exhausted",
					"drained",
				},
			},
			{
				ID:   "A7",
				Text: "Worthlessness or guilt",
				Indicators: []string{
					"worthless",
					"guilty",
					"my fault",
					"I'm a failure",
				},
			},
			{
				ID:   "A8",
				Text: "Concentration difficulties",
				Indicators: []string{
					"can't focus",
					"brain fog",
					"indecisive",
					"can't think",
				},
			},
			{
				ID:   "A9",
				Text: "Thoughts of death or suicide",
				Indicators: []string{
					"want to die",
					"suicidal",
					"better off dead",
					"thinking about death",
				},
			},
		},
	},
	{
		Name:     "Generalized Anxiety Disorder",
		Section:  "Anxiety Disorders",
		Duration: "6 months",
		DSMPage:  222,
		PDFPage:  264,
		Required: 3,
		Criteria: []Criterion{
			{
				ID:   "A",
				Text: "Excessive anxiety and worry",
				Indicators: []string{
					"constant worrying",
					"anxious",
					"can't stop worrying",
					"nervous",
					"worried",
				},
			},
			{
				ID:   "C1",
				Text: "Restlessness or feeling on edge",
				Indicators: []string{
					"restless",
					"on edge",
					"tense",
					"can't relax",
				},
			},
			{
				ID:   "C2",
				Text: "Easily fatigued",
				Indicators: []string{
					"tired from worrying",
					"exhausted",
					"worry makes me tired",
				},
			},
			{
				ID:   "C3",
				Text: "Difficulty concentrating",
				Indicators: []string{
					"can't focus",
					"mind goes blank",
					"distracted",
				},
			},
			{
				ID:   "C4",
				Text: "Irritability",
				Indicators: []string{
					"irritable",
					"annoyed",
					"short temper",
					"snappy",
				},
			},
			{
				ID:   "C5",
				Text: "Muscle tension",
				Indicators: []string{
					"tense muscles",
					"tension",
					"tight",
				},
			},
			{
				ID:   "C6",
				Text: "Sleep disturbance",
				Indicators: []string{
					"can't sleep",
					"worry keeps me awake",
					"restless sleep",
				},
			},
		},
	},
	{
		Name:     "Panic Disorder",
		Section:  "Anxiety Disorders",
		Duration: "1 month",
		DSMPage:  208,
		PDFPage:  250,
		Required: 4,
		Criteria: []Criterion{
			{
				ID:   "A1",
				Text: "Recurrent unexpected panic attacks",
				Indicators: []string{
					"panic attack",
					"came out of nowhere",
					"suddenly panicking",
					"freaking out for no reason",
				},
			},
			{
				ID:   "A2",
				Text: "Palpitations, pounding heart, or accelerated heart rate",
				Indicators: []string{
					"heart racing",
					"heart pounding",
					"heart won't slow down",
				},
			},
			{
				ID:   "A3",
				Text: "Sweating, trembling, or shaking",
				Indicators: []string{
					"shaking",
					"trembling",
					"sweating",
					"can't stop shaking",
				},
			},
			{
				ID:   "A4",
				Text: "Sensations of shortness of breath or smothering",
				Indicators: []string{
					"can't breathe",
					"short of breath",
					"suffocating",
					"hyperventilating",
				},
			},
			{
				ID:   "A5",
				Text: "Fear of losing control or dying",
				Indicators: []string{
					"thought I was dying",
					"losing control",
					"going crazy",
					"felt like a heart attack",
				},
			},
			{
				ID:   "B1",
				Text: "Persistent concern about additional attacks",
				Indicators: []string{
					"scared it'll happen again",
					"waiting for the next one",
					"afraid of another attack",
				},
			},
			{
				ID:   "B2",
				Text: "Maladaptive change in behavior related to the attacks",
				Indicators: []string{
					"avoiding places",
					"won't leave the house",
					"stopped going",
				},
			},
		},
	},
	{
		Name:     "Social Anxiety Disorder",
		Section:  "Anxiety Disorders",
		Duration: "6 months",
		DSMPage:  202,
		PDFPage:  244,
		Required: 4,
		Criteria: []Criterion{
			{
				ID:   "A",
				Text: "Marked fear or anxiety about social situations involving possible scrutiny",
				Indicators: []string{
					"everyone staring at me",
					"scared of people judging",
					"hate being around people",
					"terrified of meeting",
				},
			},
			{
				ID:   "B",
				Text: "Fear of acting in a way that will be negatively evaluated",
				Indicators: []string{
					"embarrass myself",
					"they'll think I'm weird",
					"say something stupid",
					"judge me",
				},
			},
			{
				ID:   "C",
				Text: "Social situations almost always provoke fear or anxiety",
				Indicators: []string{
					"always anxious around",
					"every time I'm with people",
					"freeze up around",
				},
			},
			{
				ID:   "D",
				Text: "Social situations are avoided or endured with intense distress",
				Indicators: []string{
					"avoid parties",
					"cancelled again",
					"made an excuse not to go",
					"dread going",
				},
			},
			{
				ID:   "E",
				Text: "Fear out of proportion to the actual threat posed",
				Indicators: []string{
					"know it's irrational",
					"it's just a small thing but",
					"overthinking every interaction",
				},
			},
		},
	},
	{
		Name:     "Narcissistic Personality Disorder",
		Section:  "Personality Disorders",
		DSMPage:  669,
		PDFPage:  711,
		Required: 5,
		Criteria: []Criterion{
			{
				ID:   "A1",
				Text: "Grandiose sense of self-importance",
				Indicators: []string{
					"I'm better than",
					"I'm special",
					"I'm the best",
					"superior",
				},
			},
			{
				ID:   "A2",
				Text: "Fantasies of success/power/brilliance",
				Indicators: []string{
					"when I'm famous",
					"destined for greatness",
					"perfect",
				},
			},
			{
				ID:   "A3",
				Text: "Believes they are special and unique",
				Indicators: []string{
					"nobody understands",
					"I'm different",
					"you wouldn't get it",
				},
			},
			{
				ID:   "A4",
				Text: "Requires excessive admiration",
				Indicators: []string{
					"need praise",
					"fishing for compliments",
					"validation",
				},
			},
			{
				ID:   "A5",
				Text: "Sense of entitlement",
				Indicators: []string{
					"I deserve",
					"they should",
					"I'm owed",
				},
			},
			{
				ID:   "A6",
				Text: "Interpersonally exploitative",
				Indicators: []string{
					"uses others",
					"takes advantage",
					"manipulates",
				},
			},
			{
				ID:   "A7",
				Text: "Lacks empathy",
				Indicators: []string{
					"don't care how they feel",
					"their problem",
					"not my concern",
				},
			},
			{
				ID:   "A8",
				Text: "Envious or believes others envious",
				Indicators: []string{
					"jealous of me",
					"they want what I have",
					"envy",
				},
			},
			{
				ID:   "A9",
				Text: "Arrogant behaviors",
				Indicators: []string{
					"condescending",
					"looking down",
					"dismissive",
				},
			},
		},
	},
}

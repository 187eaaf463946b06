package content

// Static wellness catalogs served to the Learn and Breathe screens. Pacing of
// timed exercises happens client-side; phase durations here are seconds.

type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type LearnModule struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	Sections []Section `json:"sections"`
	Takeaway string    `json:"takeaway"`
}

type Phase struct {
	Name        string `json:"name"`
	Instruction string `json:"instruction,omitempty"`
	Seconds     int    `json:"seconds"`
}

type Exercise struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Phases      []Phase `json:"phases"`
	Looping     bool    `json:"looping"`
}

func LearnModules() []LearnModule {
	return learnModules
}

func Exercises() []Exercise {
	return exercises
}

var exercises = []Exercise{
	{
		ID:          "breathing",
		Title:       "Box Breathing",
		Description: "Calm your nervous system with a 4-4-4-4 rhythm",
		Looping:     true,
		Phases: []Phase{
			{Name: "inhale", Seconds: 4},
			{Name: "hold", Seconds: 4},
			{Name: "exhale", Seconds: 4},
			{Name: "rest", Seconds: 4},
		},
	},
	{
		ID:          "grounding",
		Title:       "5-4-3-2-1 Grounding",
		Description: "Reconnect with your senses to ease anxiety",
		Phases: []Phase{
			{Name: "See", Instruction: "Name 5 things you can SEE around you"},
			{Name: "Touch", Instruction: "Name 4 things you can TOUCH"},
			{Name: "Hear", Instruction: "Name 3 things you can HEAR"},
			{Name: "Smell", Instruction: "Name 2 things you can SMELL"},
			{Name: "Taste", Instruction: "Name 1 thing you can TASTE"},
		},
	},
	{
		ID:          "bodyscan",
		Title:       "Body Scan",
		Description: "Guided relaxation from head to toe",
		Phases: []Phase{
			{Name: "Head & Face", Instruction: "Relax your forehead, jaw, and neck. Release any tension.", Seconds: 8},
			{Name: "Shoulders & Arms", Instruction: "Let your shoulders drop. Feel heaviness in your arms and hands.", Seconds: 8},
			{Name: "Chest & Stomach", Instruction: "Breathe deeply. Notice your chest rise and fall.", Seconds: 8},
			{Name: "Hips & Legs", Instruction: "Relax your hips, thighs, and knees. Let go of tension.", Seconds: 8},
			{Name: "Feet & Toes", Instruction: "Feel the ground beneath you. Wiggle your toes gently.", Seconds: 8},
		},
	},
	{
		ID:          "pmr",
		Title:       "Muscle Relaxation",
		Description: "Tense and release each muscle group to melt away stress",
		Phases: []Phase{
			{Name: "Fists", Instruction: "Clench your fists tightly for 5 seconds... then release.", Seconds: 10},
			{Name: "Arms", Instruction: "Flex your biceps hard for 5 seconds... then let go.", Seconds: 10},
			{Name: "Face", Instruction: "Scrunch your face tightly... then relax completely.", Seconds: 10},
		},
	},
}

var learnModules = []LearnModule{
	{
		ID: "anxiety", Title: "Understanding Anxiety", Duration: "5 min",
		Sections: []Section{
			{Heading: "What is Anxiety?", Body: "Anxiety is your body's natural response to stress. It's a feeling of fear or apprehension about what's to come. While it's normal to feel anxious sometimes, persistent anxiety can interfere with daily life."},
			{Heading: "The Fight-or-Flight Response", Body: "When you feel threatened, your brain triggers the fight-or-flight response. Your heart races, breathing quickens, and muscles tense. This was useful for our ancestors facing physical dangers, but today it can be triggered by work deadlines or social situations."},
			{Heading: "Common Signs", Body: "• Racing thoughts or constant worry\n• Difficulty concentrating\n• Muscle tension and headaches\n• Sleep problems\n• Irritability\n• Stomach issues"},
			{Heading: "Coping Strategies", Body: "1. Practice deep breathing (try our Box Breathing exercise!)\n2. Challenge negative thoughts — ask 'Is this thought based on facts?'\n3. Break tasks into smaller steps\n4. Limit caffeine and alcohol\n5. Regular exercise, even a 10-minute walk helps"},
		},
		Takeaway: "Anxiety is manageable. Understanding your triggers is the first step to taking control.",
	},
	{
		ID: "dopamine", Title: "Dopamine & Your Brain", Duration: "4 min",
		Sections: []Section{
			{Heading: "The Reward Chemical", Body: "Dopamine is a neurotransmitter that plays a major role in motivation, reward, and pleasure. It's released when you eat food you enjoy, exercise, or accomplish something meaningful."},
			{Heading: "The Dopamine Trap", Body: "Social media, video games, and junk food provide quick dopamine hits. Over time, your brain needs more stimulation to feel the same pleasure — this is called dopamine desensitization."},
			{Heading: "Healthy Dopamine Habits", Body: "• Complete small tasks and celebrate wins\n• Exercise regularly (even 20 minutes)\n• Listen to music you love\n• Practice gratitude (try our Gratitude Jar game!)\n• Get sunlight in the morning\n• Try something creative"},
			{Heading: "The Dopamine Detox", Body: "Try reducing high-stimulation activities for a day. No social media, no gaming, no junk food. You'll notice everyday activities become more enjoyable when your dopamine baseline resets."},
		},
		Takeaway: "Balance is key. Build habits that provide sustainable dopamine, not just quick hits.",
	},
	{
		ID: "regulation", Title: "Emotional Regulation 101", Duration: "6 min",
		Sections: []Section{
			{Heading: "What is Emotional Regulation?", Body: "It's the ability to manage and respond to emotional experiences in a healthy way. It doesn't mean suppressing emotions — it means understanding and directing them."},
			{Heading: "The Emotion Wheel", Body: "Basic emotions (anger, sadness, fear, joy, surprise, disgust) branch into more specific ones. 'I feel bad' might actually be disappointment, frustration, or loneliness. Naming the exact emotion helps you process it."},
			{Heading: "The RAIN Technique", Body: "R — Recognize: Notice what you're feeling\nA — Allow: Let the emotion exist without judgment\nI — Investigate: Where do you feel it in your body?\nN — Non-identification: You are not your emotions; they're temporary visitors"},
			{Heading: "When Emotions Overwhelm", Body: "• Use the 5-4-3-2-1 grounding technique (available in Exercises!)\n• Take a cold shower or splash cold water on your face\n• Move your body — jump, stretch, walk\n• Write it down in your journal\n• Talk to someone you trust"},
		},
		Takeaway: "Emotions are information, not instructions. Learn to listen to them without being controlled by them.",
	},
	{
		ID: "addiction", Title: "Breaking Addiction Cycles", Duration: "7 min",
		Sections: []Section{
			{Heading: "Understanding Addiction", Body: "Addiction is a complex condition where the brain becomes dependent on a substance or behavior for reward. It hijacks your brain's reward system, making you crave the substance or behavior despite negative consequences."},
			{Heading: "The Cycle", Body: "Trigger → Craving → Use → Temporary Relief → Guilt/Shame → Trigger\n\nBreaking free means interrupting this cycle at any point. The earlier you intervene, the easier it is."},
			{Heading: "Urge Surfing", Body: "When a craving hits, imagine it as a wave. It rises, peaks, and then falls — usually within 15-30 minutes. Instead of fighting it:\n1. Notice the urge\n2. Breathe through it\n3. Observe it without acting\n4. Let it pass naturally"},
			{Heading: "Building New Patterns", Body: "• Identify your triggers (time, place, emotion, people)\n• Replace the behavior with something healthier\n• Build a support network\n• Celebrate small wins — each day matters\n• Be kind to yourself if you slip — it's part of recovery"},
		},
		Takeaway: "Recovery is not linear. Every moment of resistance builds your strength. You are stronger than your cravings.",
	},
	{
		ID: "overthinking", Title: "Overthinking: Why & How", Duration: "5 min",
		Sections: []Section{
			{Heading: "Why We Overthink", Body: "Overthinking is your brain's attempt to control uncertain situations. It feels productive but actually keeps you stuck. Common triggers include fear of failure, perfectionism, and past experiences."},
			{Heading: "Rumination vs Problem-Solving", Body: "Problem-solving moves you forward: 'What can I do about this?'\nRumination keeps you stuck: 'Why did this happen to me?'\n\nIf you've been thinking about the same thing for more than 10 minutes without a new insight, you're ruminating."},
			{Heading: "The 5-Minute Rule", Body: "Give yourself exactly 5 minutes to worry about something. Set a timer. Think about it deeply. When the timer goes off, move on to an activity. This trains your brain that worry has a beginning and an end."},
			{Heading: "Techniques to Stop", Body: "• Write your thoughts down — getting them out of your head helps\n• Ask: 'Will this matter in 5 years?'\n• Practice mindfulness (try our Body Scan exercise!)\n• Set 'worry time' — schedule 15 min/day for worrying\n• Challenge each thought: 'Is this fact or opinion?'"},
		},
		Takeaway: "Your thoughts are not facts. You can observe them without believing every one.",
	},
}

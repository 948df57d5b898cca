package content

import "englishquest/internal/models"

// Static learning content. Difficulty: 1 = beginner, 2 = intermediate,
// 3 = advanced. Words are grouped by topic.

var vocabulary = map[string][]models.VocabWord{
	"everyday": {
		{Word: "breakfast", Definition: "The first meal of the day", Example: "I had eggs for breakfast.", Difficulty: 1, Topic: "everyday"},
		{Word: "schedule", Definition: "A plan for activities and times", Example: "My schedule is very busy today.", Difficulty: 1, Topic: "everyday"},
		{Word: "appointment", Definition: "A planned meeting at a specific time", Example: "I have a doctor appointment at 3pm.", Difficulty: 1, Topic: "everyday"},
		{Word: "grocery", Definition: "Food and supplies bought at a store", Example: "I need to buy groceries for dinner.", Difficulty: 1, Topic: "everyday"},
		{Word: "commute", Definition: "Regular travel to and from work", Example: "My commute takes 30 minutes.", Difficulty: 2, Topic: "everyday"},
		{Word: "errand", Definition: "A short trip to do a task", Example: "I have some errands to run after work.", Difficulty: 2, Topic: "everyday"},
		{Word: "routine", Definition: "A regular sequence of actions", Example: "Exercise is part of my morning routine.", Difficulty: 1, Topic: "everyday"},
		{Word: "leisure", Definition: "Free time for enjoyment", Example: "I read books during my leisure time.", Difficulty: 2, Topic: "everyday"},
		{Word: "chore", Definition: "A regular household task", Example: "Washing dishes is my least favorite chore.", Difficulty: 1, Topic: "everyday"},
		{Word: "convenience", Definition: "Something that makes life easier", Example: "Online shopping is a great convenience.", Difficulty: 2, Topic: "everyday"},
	},
	"business": {
		{Word: "deadline", Definition: "The latest time to finish something", Example: "The project deadline is Friday.", Difficulty: 1, Topic: "business"},
		{Word: "colleague", Definition: "A person you work with", Example: "My colleague helped me with the report.", Difficulty: 1, Topic: "business"},
		{Word: "negotiate", Definition: "To discuss to reach an agreement", Example: "We need to negotiate the contract terms.", Difficulty: 2, Topic: "business"},
		{Word: "proposal", Definition: "A formal plan or suggestion", Example: "I submitted a proposal for the new project.", Difficulty: 2, Topic: "business"},
		{Word: "revenue", Definition: "Income earned by a business", Example: "The company revenue increased by 20%.", Difficulty: 2, Topic: "business"},
		{Word: "stakeholder", Definition: "Person with interest in a business", Example: "We presented the plan to all stakeholders.", Difficulty: 3, Topic: "business"},
		{Word: "implement", Definition: "To put a plan into action", Example: "We will implement the changes next month.", Difficulty: 2, Topic: "business"},
		{Word: "delegate", Definition: "To assign tasks to others", Example: "Good managers know how to delegate.", Difficulty: 2, Topic: "business"},
		{Word: "collaborate", Definition: "To work together on a project", Example: "Our teams will collaborate on this.", Difficulty: 2, Topic: "business"},
		{Word: "acquisition", Definition: "Buying another company", Example: "The acquisition was worth $2 billion.", Difficulty: 3, Topic: "business"},
	},
	"travel": {
		{Word: "destination", Definition: "The place you are going to", Example: "Paris is my dream destination.", Difficulty: 1, Topic: "travel"},
		{Word: "itinerary", Definition: "A detailed travel plan", Example: "Our itinerary includes three cities.", Difficulty: 2, Topic: "travel"},
		{Word: "reservation", Definition: "An arrangement to have something held", Example: "I made a hotel reservation online.", Difficulty: 1, Topic: "travel"},
		{Word: "luggage", Definition: "Bags and suitcases for travel", Example: "My luggage weighs 20 kilograms.", Difficulty: 1, Topic: "travel"},
		{Word: "departure", Definition: "The act of leaving", Example: "Departure is scheduled for 8am.", Difficulty: 1, Topic: "travel"},
		{Word: "layover", Definition: "A stop between flights", Example: "We have a 3-hour layover in Dubai.", Difficulty: 2, Topic: "travel"},
		{Word: "accommodation", Definition: "A place to stay", Example: "The accommodation was very comfortable.", Difficulty: 2, Topic: "travel"},
		{Word: "passport", Definition: "Document for international travel", Example: "Make sure your passport is valid.", Difficulty: 1, Topic: "travel"},
		{Word: "customs", Definition: "Border check for goods", Example: "We went through customs quickly.", Difficulty: 2, Topic: "travel"},
		{Word: "excursion", Definition: "A short trip or outing", Example: "The boat excursion was amazing.", Difficulty: 2, Topic: "travel"},
	},
	"technology": {
		{Word: "software", Definition: "Programs that run on computers", Example: "This software is easy to use.", Difficulty: 1, Topic: "technology"},
		{Word: "download", Definition: "To copy data from the internet", Example: "I need to download the file.", Difficulty: 1, Topic: "technology"},
		{Word: "algorithm", Definition: "A set of rules for solving problems", Example: "The algorithm finds the best route.", Difficulty: 2, Topic: "technology"},
		{Word: "interface", Definition: "The way users interact with a system", Example: "The user interface is very intuitive.", Difficulty: 2, Topic: "technology"},
		{Word: "database", Definition: "An organized collection of data", Example: "All customer info is in the database.", Difficulty: 2, Topic: "technology"},
		{Word: "encryption", Definition: "Converting data into secret code", Example: "Encryption protects your password.", Difficulty: 3, Topic: "technology"},
		{Word: "bandwidth", Definition: "Data transfer capacity", Example: "We need more bandwidth for streaming.", Difficulty: 2, Topic: "technology"},
		{Word: "compatible", Definition: "Able to work together", Example: "This device is compatible with iOS.", Difficulty: 2, Topic: "technology"},
		{Word: "glitch", Definition: "A small technical problem", Example: "There was a glitch in the system.", Difficulty: 1, Topic: "technology"},
		{Word: "synchronize", Definition: "To make things happen together", Example: "The devices will synchronize automatically.", Difficulty: 2, Topic: "technology"},
	},
	"health": {
		{Word: "symptom", Definition: "A sign of illness", Example: "Fever is a common symptom of flu.", Difficulty: 1, Topic: "health"},
		{Word: "prescription", Definition: "Doctor's order for medicine", Example: "I need to pick up my prescription.", Difficulty: 2, Topic: "health"},
		{Word: "diagnosis", Definition: "Identification of an illness", Example: "The diagnosis was a mild cold.", Difficulty: 2, Topic: "health"},
		{Word: "nutrition", Definition: "The study of food and health", Example: "Good nutrition is essential for health.", Difficulty: 2, Topic: "health"},
		{Word: "allergic", Definition: "Having a bad reaction to something", Example: "I am allergic to peanuts.", Difficulty: 1, Topic: "health"},
		{Word: "immunity", Definition: "Protection against disease", Example: "Vaccines help build immunity.", Difficulty: 2, Topic: "health"},
		{Word: "therapy", Definition: "Treatment for illness or problems", Example: "Physical therapy helped my back.", Difficulty: 2, Topic: "health"},
		{Word: "contagious", Definition: "Able to spread to others", Example: "The flu is highly contagious.", Difficulty: 2, Topic: "health"},
		{Word: "chronic", Definition: "Lasting a long time", Example: "She has chronic back pain.", Difficulty: 2, Topic: "health"},
		{Word: "rehabilitation", Definition: "Restoring health after illness", Example: "Rehabilitation took several months.", Difficulty: 3, Topic: "health"},
	},
	"emotions": {
		{Word: "anxious", Definition: "Feeling worried or nervous", Example: "I feel anxious before exams.", Difficulty: 1, Topic: "emotions"},
		{Word: "frustrated", Definition: "Feeling upset when things go wrong", Example: "I was frustrated by the delay.", Difficulty: 1, Topic: "emotions"},
		{Word: "overwhelmed", Definition: "Feeling like too much is happening", Example: "I felt overwhelmed by the workload.", Difficulty: 2, Topic: "emotions"},
		{Word: "content", Definition: "Feeling satisfied and happy", Example: "I feel content with my life.", Difficulty: 1, Topic: "emotions"},
		{Word: "enthusiastic", Definition: "Very excited and interested", Example: "She is enthusiastic about the project.", Difficulty: 2, Topic: "emotions"},
		{Word: "nostalgic", Definition: "Missing the past", Example: "The old song made me feel nostalgic.", Difficulty: 2, Topic: "emotions"},
		{Word: "resilient", Definition: "Able to recover from difficulties", Example: "She is very resilient after setbacks.", Difficulty: 3, Topic: "emotions"},
		{Word: "compassionate", Definition: "Showing care for others", Example: "He is a compassionate doctor.", Difficulty: 2, Topic: "emotions"},
		{Word: "indifferent", Definition: "Not caring about something", Example: "He seemed indifferent to the news.", Difficulty: 2, Topic: "emotions"},
		{Word: "euphoric", Definition: "Feeling extremely happy", Example: "I was euphoric after winning.", Difficulty: 3, Topic: "emotions"},
	},
}

var sentences = []models.Sentence{
	{Sentence: "I go to school every day", Words: []string{"I", "go", "to", "school", "every", "day"}, Difficulty: 1, Topic: "daily life"},
	{Sentence: "She likes to read books", Words: []string{"She", "likes", "to", "read", "books"}, Difficulty: 1, Topic: "hobbies"},
	{Sentence: "The weather is nice today", Words: []string{"The", "weather", "is", "nice", "today"}, Difficulty: 1, Topic: "weather"},
	{Sentence: "Can I have a glass of water", Words: []string{"Can", "I", "have", "a", "glass", "of", "water"}, Difficulty: 1, Topic: "requests"},
	{Sentence: "My name is John and I am a teacher", Words: []string{"My", "name", "is", "John", "and", "I", "am", "a", "teacher"}, Difficulty: 1, Topic: "introductions"},
	{Sentence: "I have been waiting for an hour", Words: []string{"I", "have", "been", "waiting", "for", "an", "hour"}, Difficulty: 2, Topic: "time"},
	{Sentence: "Would you mind if I opened the window", Words: []string{"Would", "you", "mind", "if", "I", "opened", "the", "window"}, Difficulty: 2, Topic: "polite requests"},
	{Sentence: "If I had known I would have come earlier", Words: []string{"If", "I", "had", "known", "I", "would", "have", "come", "earlier"}, Difficulty: 2, Topic: "conditionals"},
	{Sentence: "The meeting has been postponed until next week", Words: []string{"The", "meeting", "has", "been", "postponed", "until", "next", "week"}, Difficulty: 2, Topic: "business"},
	{Sentence: "She suggested that we should leave early", Words: []string{"She", "suggested", "that", "we", "should", "leave", "early"}, Difficulty: 2, Topic: "suggestions"},
	{Sentence: "Despite the rain we decided to go hiking", Words: []string{"Despite", "the", "rain", "we", "decided", "to", "go", "hiking"}, Difficulty: 3, Topic: "complex"},
	{Sentence: "Not only did he finish the project but he also won an award", Words: []string{"Not", "only", "did", "he", "finish", "the", "project", "but", "he", "also", "won", "an", "award"}, Difficulty: 3, Topic: "emphasis"},
	{Sentence: "The more you practice the better you become", Words: []string{"The", "more", "you", "practice", "the", "better", "you", "become"}, Difficulty: 3, Topic: "comparatives"},
	{Sentence: "Had I known about the traffic I would have taken the train", Words: []string{"Had", "I", "known", "about", "the", "traffic", "I", "would", "have", "taken", "the", "train"}, Difficulty: 3, Topic: "conditionals"},
	{Sentence: "Neither the manager nor the employees were aware of the problem", Words: []string{"Neither", "the", "manager", "nor", "the", "employees", "were", "aware", "of", "the", "problem"}, Difficulty: 3, Topic: "correlative conjunctions"},
}

var idioms = []models.Idiom{
	{Idiom: "break the ice", Meaning: "To start a conversation in a social situation", Example: "He told a joke to break the ice at the meeting.", Origin: "From ships breaking ice to create a path"},
	{Idiom: "a piece of cake", Meaning: "Something very easy to do", Example: "The test was a piece of cake!", Origin: "Cakes were given as prizes for winning simple competitions"},
	{Idiom: "hit the nail on the head", Meaning: "To be exactly right about something", Example: "You hit the nail on the head with that analysis.", Origin: "From carpentry - hitting the nail perfectly"},
	{Idiom: "once in a blue moon", Meaning: "Very rarely", Example: "He only visits once in a blue moon.", Origin: "A blue moon is a rare second full moon in a month"},
	{Idiom: "under the weather", Meaning: "Feeling sick or unwell", Example: "I am feeling under the weather today.", Origin: "From sailing - sick sailors went below deck, under the weather"},
	{Idiom: "bite the bullet", Meaning: "To face a difficult situation bravely", Example: "I had to bite the bullet and tell him the truth.", Origin: "Soldiers would bite bullets during surgery without anesthesia"},
	{Idiom: "cost an arm and a leg", Meaning: "To be very expensive", Example: "That car cost an arm and a leg!", Origin: "Possibly from portrait painting where limbs cost extra"},
	{Idiom: "let the cat out of the bag", Meaning: "To reveal a secret accidentally", Example: "She let the cat out of the bag about the surprise party.", Origin: "From market days when cats were sold as pigs in bags"},
	{Idiom: "the ball is in your court", Meaning: "It is your turn to take action", Example: "I have made my offer. The ball is in your court now.", Origin: "From tennis - waiting for opponent to hit the ball back"},
	{Idiom: "burning the midnight oil", Meaning: "Working late into the night", Example: "I was burning the midnight oil to finish the report.", Origin: "Before electricity, people used oil lamps to work at night"},
	{Idiom: "beat around the bush", Meaning: "To avoid talking about something directly", Example: "Stop beating around the bush and tell me what happened.", Origin: "From hunting - beating bushes to flush out game"},
	{Idiom: "get out of hand", Meaning: "To become uncontrollable", Example: "The party got out of hand when more people arrived.", Origin: "From horse riding - losing grip on the reins"},
	{Idiom: "in hot water", Meaning: "In trouble or difficulty", Example: "He is in hot water with his boss for being late.", Origin: "From medieval punishment of boiling criminals"},
	{Idiom: "kill two birds with one stone", Meaning: "To accomplish two things with one action", Example: "By cycling to work, I kill two birds with one stone - exercise and commuting.", Origin: "Ancient hunting technique"},
	{Idiom: "on the same page", Meaning: "In agreement or understanding", Example: "Let us make sure we are on the same page before the meeting.", Origin: "From reading the same page of a book together"},
}

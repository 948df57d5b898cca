package content

import "englishquest/internal/models"

var dialogueScenarios = []models.DialogueScenario{
	{
		ID:          "restaurant",
		Title:       "At a Restaurant",
		Description: "Practice ordering food and making requests",
		Difficulty:  1,
		Icon:        "🍽️",
		Dialogue: []models.DialogueTurn{
			{Speaker: "waiter", Text: "Good evening! Welcome to The Garden. Do you have a reservation?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Yes, I have a reservation for two under the name Smith.", Correct: true, Response: "Excellent! Right this way, please."},
				{Text: "Give me a table now please.", Correct: false, Response: "I see... Let me check if we have availability."},
				{Text: "What is a reservation?", Correct: false, Response: "A reservation is when you book a table in advance."},
			}},
			{Speaker: "waiter", Text: "Here are your menus. Can I get you something to drink while you decide?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Could I have a glass of water, please?", Correct: true, Response: "Of course! Still or sparkling?"},
				{Text: "Water.", Correct: false, Response: "Certainly. Just water?"},
				{Text: "I want the most expensive wine you have.", Correct: false, Response: "Our finest is the 2015 Château... Would you like to see the wine list?"},
			}},
			{Speaker: "waiter", Text: "Are you ready to order, or do you need a few more minutes?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Could you recommend something? I am not sure what to have.", Correct: true, Response: "Our chef special today is grilled salmon. It is very popular."},
				{Text: "I will have the steak, medium rare, please.", Correct: true, Response: "Excellent choice! Would you like any sides with that?"},
				{Text: "Just give me food.", Correct: false, Response: "Could you be more specific about what you would like?"},
			}},
		},
	},
	{
		ID:          "hotel",
		Title:       "Hotel Check-in",
		Description: "Practice checking into a hotel",
		Difficulty:  1,
		Icon:        "🏨",
		Dialogue: []models.DialogueTurn{
			{Speaker: "receptionist", Text: "Good afternoon! Welcome to Grand Hotel. How may I assist you today?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Hello! I would like to check in. I have a reservation.", Correct: true, Response: "Of course! May I have your name, please?"},
				{Text: "Room. Now.", Correct: false, Response: "I understand. Do you have a reservation with us?"},
				{Text: "How much is a room?", Correct: false, Response: "Our standard rooms start at $150 per night. Would you like to make a reservation?"},
			}},
			{Speaker: "receptionist", Text: "Thank you, Mr. Johnson. I found your reservation. For three nights, correct?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Yes, that is correct. From today until Thursday.", Correct: true, Response: "Perfect. I have you in a deluxe room with a city view."},
				{Text: "Maybe. I do not remember.", Correct: false, Response: "No problem, let me confirm the dates for you."},
			}},
			{Speaker: "receptionist", Text: "Your room is on the 8th floor. Would you like help with your luggage?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Yes, please. That would be very helpful.", Correct: true, Response: "I will call a bellhop right away. Is there anything else you need?"},
				{Text: "No, thank you. I can manage.", Correct: true, Response: "Very well. Here is your key card. The elevator is on your right."},
			}},
		},
	},
	{
		ID:          "job-interview",
		Title:       "Job Interview",
		Description: "Practice professional interview skills",
		Difficulty:  2,
		Icon:        "💼",
		Dialogue: []models.DialogueTurn{
			{Speaker: "interviewer", Text: "Thank you for coming in today. Please, have a seat. Could you start by telling me a little about yourself?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Certainly. I am a software developer with five years of experience, and I have a passion for creating user-friendly applications.", Correct: true, Response: "That sounds impressive. What attracted you to this position?"},
				{Text: "I am great. You should hire me.", Correct: false, Response: "I see. Could you tell me more about your specific experience?"},
				{Text: "What do you want to know?", Correct: false, Response: "Well, tell me about your professional background and relevant experience."},
			}},
			{Speaker: "interviewer", Text: "What would you say is your greatest strength?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "I am good at problem-solving and can stay calm under pressure. For example, I once fixed a critical bug just hours before a major launch.", Correct: true, Response: "That is a valuable skill. And what about areas where you could improve?"},
				{Text: "I have no weaknesses.", Correct: false, Response: "Everyone has areas for improvement. What might yours be?"},
			}},
			{Speaker: "interviewer", Text: "Do you have any questions for me about the role or the company?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Yes, could you tell me more about the team I would be working with?", Correct: true, Response: "Great question! You would be joining a team of six developers..."},
				{Text: "What is the salary?", Correct: false, Response: "We can discuss compensation details later in the process."},
				{Text: "No, I think you covered everything.", Correct: true, Response: "Alright. Thank you for your time today. We will be in touch."},
			}},
		},
	},
	{
		ID:          "doctor",
		Title:       "At the Doctor",
		Description: "Practice describing symptoms and understanding medical advice",
		Difficulty:  2,
		Icon:        "🏥",
		Dialogue: []models.DialogueTurn{
			{Speaker: "doctor", Text: "Hello, I am Dr. Smith. What brings you in today?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "I have been feeling unwell for the past few days. I have a headache and a sore throat.", Correct: true, Response: "I see. When did the symptoms start?"},
				{Text: "I am sick.", Correct: false, Response: "Can you describe your symptoms more specifically?"},
			}},
			{Speaker: "doctor", Text: "Are you experiencing any other symptoms, such as fever or fatigue?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "Yes, I have had a slight fever and I have been feeling very tired.", Correct: true, Response: "Thank you. Let me take your temperature and have a look at your throat."},
				{Text: "I do not know.", Correct: false, Response: "Have you been checking your temperature at all?"},
			}},
			{Speaker: "doctor", Text: "It looks like you have a viral infection. I am going to prescribe some medication. Do you have any allergies?"},
			{Speaker: models.PlayerSpeaker, Options: []models.DialogueOption{
				{Text: "No, I do not have any allergies that I know of.", Correct: true, Response: "Good. Take this medication twice a day for five days."},
				{Text: "Yes, I am allergic to penicillin.", Correct: true, Response: "Thank you for telling me. I will prescribe an alternative."},
			}},
		},
	},
}

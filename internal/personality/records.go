package personality

var records = map[string]Record{
	// Analysts
	"INTJ": {
		Code:        "INTJ",
		Title:       "The Mastermind",
		Tagline:     "Imaginative and strategic thinkers, with a plan for everything.",
		Strengths:   []string{"Strategic Thinking", "High Standards", "Independent", "Global Vision"},
		Weaknesses:  []string{"Overly Critical", "Dismissive of Emotions", "Perfectionist"},
		Hobbies:     []string{"Strategy Games", "Programming", "Philosophy", "Reading"},
		Careers:     []Career{{"Software Architect", 98}, {"Surgeon", 96}, {"Investment Banker", 94}, {"Judge", 90}, {"Scientist", 95}},
		Characters:  []Character{{"Walter White", "Breaking Bad"}, {"Gandalf", "Lord of the Rings"}, {"Bruce Wayne", "The Dark Knight"}, {"Beth Harmon", "The Queen's Gambit"}},
		Movies:      []Movie{{"Inception", "Sci-Fi Thriller"}, {"The Imitation Game", "Biography"}, {"Arrival", "Sci-Fi"}, {"Sherlock Holmes", "Mystery"}},
		Quote:       "I’m not arguing, I’m explaining why I’m right.",
		Description: "Have original minds and great drive for implementing their ideas and achieving their goals. Quickly see patterns in external events and develop long-range explanatory perspectives. When committed, organize a job and carry it through. Skeptical and independent, have high standards of competence and performance - for themselves and others.",
	},
	"INTP": {
		Code:        "INTP",
		Title:       "The Logician",
		Tagline:     "Innovative inventors with an unquenchable thirst for knowledge.",
		Strengths:   []string{"Analytical", "Original", "Open-Minded", "Objective"},
		Weaknesses:  []string{"Disconnected", "Insensitive", "Analysis Paralysis"},
		Hobbies:     []string{"Coding", "Video Games", "Debating", "Science Fiction"},
		Careers:     []Career{{"Data Scientist", 99}, {"Professor", 95}, {"Systems Engineer", 94}, {"Mathematician", 98}, {"Philosopher", 90}},
		Characters:  []Character{{"L (Lawliet)", "Death Note"}, {"Spencer Reid", "Criminal Minds"}, {"Neo", "The Matrix"}, {"Rust Cohle", "True Detective"}},
		Movies:      []Movie{{"The Matrix", "Sci-Fi"}, {"Ex Machina", "Sci-Fi Thriller"}, {"A Beautiful Mind", "Biography"}, {"Interstellar", "Sci-Fi"}},
		Quote:       "I am interested in the truth, not what people want to be true.",
		Description: "Seek to develop logical explanations for everything that interests them. Theoretical and abstract, interested more in ideas than in social interaction. Quiet, contained, flexible, and adaptable. Have unusual ability to focus in depth to solve problems in their area of interest. Skeptical, sometimes critical, always analytical.",
	},
	"ENTJ": {
		Code:        "ENTJ",
		Title:       "The Commander",
		Tagline:     "Bold, imaginative and strong-willed leaders, always finding a way - or making one.",
		Strengths:   []string{"Efficient", "Energetic", "Self-Confident", "Charismatic"},
		Weaknesses:  []string{"Stubborn", "Intolerant", "Arrogant"},
		Hobbies:     []string{"Public Speaking", "Investing", "Competitive Sports", "Reading"},
		Careers:     []Career{{"CEO / Executive", 99}, {"Management Consultant", 96}, {"Lawyer", 95}, {"Judge", 92}, {"University Professor", 90}},
		Characters:  []Character{{"Thomas Shelby", "Peaky Blinders"}, {"Harvey Specter", "Suits"}, {"Miranda Priestly", "Devil Wears Prada"}, {"Tywin Lannister", "Game of Thrones"}},
		Movies:      []Movie{{"The Wolf of Wall Street", "Crime/Comedy"}, {"Steve Jobs", "Biography"}, {"Patton", "Biography"}, {"Vice", "Biography"}},
		Quote:       "Efficiency is doing things right; effectiveness is doing the right things.",
		Description: "Frank, decisive, assume leadership readily. Quickly see illogical and inefficient procedures and policies, develop and implement comprehensive systems to solve organizational problems. Enjoy long-term planning and goal setting. Usually well informed, well read, enjoy expanding their knowledge and passing it on to others. Forceful in presenting their ideas.",
	},
	"ENTP": {
		Code:        "ENTP",
		Title:       "The Debater",
		Tagline:     "Smart and curious thinkers who cannot resist an intellectual challenge.",
		Strengths:   []string{"Knowledgeable", "Quick-Thinker", "Original", "Charismatic"},
		Weaknesses:  []string{"Argumentative", "Insensitive", "Difficult to Focus"},
		Hobbies:     []string{"Debating", "Entrepreneurship", "Skydiving", "Improv"},
		Careers:     []Career{{"Entrepreneur", 98}, {"Lawyer", 95}, {"Marketing Director", 92}, {"Politician", 90}, {"Creative Director", 94}},
		Characters:  []Character{{"Tony Stark", "Iron Man"}, {"Tyrion Lannister", "Game of Thrones"}, {"The Joker", "Batman"}, {"Jack Sparrow", "Pirates of the Caribbean"}},
		Movies:      []Movie{{"Iron Man", "Action"}, {"Catch Me If You Can", "Crime/Biography"}, {"Fight Club", "Drama"}, {"Thank You for Smoking", "Comedy"}},
		Quote:       "I argue to learn, not just to win.",
		Description: "Quick, ingenious, stimulating, alert, and outspoken. Resourceful in solving new and challenging problems. Adept at generating conceptual possibilities and then analyzing them strategically. Good at reading other people. Bored by routine, will seldom do the same thing the same way, apt to turn to one new interest after another.",
	},

	// Diplomats
	"INFJ": {
		Code:        "INFJ",
		Title:       "The Advocate",
		Tagline:     "Quiet and mystical, yet very inspiring and tireless idealists.",
		Strengths:   []string{"Creative", "Insightful", "Principled", "Passionate"},
		Weaknesses:  []string{"Sensitive to Criticism", "Perfectionist", "Private"},
		Hobbies:     []string{"Writing", "Art Appreciation", "Volunteering", "Gardening"},
		Careers:     []Career{{"Psychologist", 98}, {"Writer / Author", 96}, {"Counselor", 95}, {"HR Manager", 90}, {"Non-Profit Founder", 92}},
		Characters:  []Character{{"Albus Dumbledore", "Harry Potter"}, {"Atticus Finch", "To Kill a Mockingbird"}, {"Lisa Simpson", "The Simpsons"}, {"Yoda", "Star Wars"}},
		Movies:      []Movie{{"Amélie", "Romance/Comedy"}, {"Eternal Sunshine", "Romance/Sci-Fi"}, {"Her", "Romance/Sci-Fi"}, {"Schindler's List", "History"}},
		Quote:       "Treat people as if they were what they ought to be and you help them to become what they are capable of being.",
		Description: "Seek meaning and connection in ideas, relationships, and material possessions. Want to understand what motivates people and are insightful about others. Conscientious and committed to their firm values. Develop a clear vision about how best to serve the common good. Organized and decisive in implementing their vision.",
	},
	"INFP": {
		Code:        "INFP",
		Title:       "The Mediator",
		Tagline:     "Poetic, kind and altruistic people, always eager to help a good cause.",
		Strengths:   []string{"Empathetic", "Generous", "Open-Minded", "Creative"},
		Weaknesses:  []string{"Unrealistic", "Self-Isolating", "Unfocused"},
		Hobbies:     []string{"Poetry", "Calligraphy", "Indie Music", "Photography"},
		Careers:     []Career{{"Writer", 98}, {"Graphic Designer", 95}, {"Veterinarian", 92}, {"Therapist", 94}, {"Librarian", 90}},
		Characters:  []Character{{"Frodo Baggins", "Lord of the Rings"}, {"Luke Skywalker", "Star Wars"}, {"Wanda Maximoff", "Marvel"}, {"Amélie Poulain", "Amélie"}},
		Movies:      []Movie{{"Midnight in Paris", "Fantasy/Romance"}, {"Into the Wild", "Adventure/Biography"}, {"Spirited Away", "Animation"}, {"Little Miss Sunshine", "Comedy/Drama"}},
		Quote:       "Not all those who wander are lost.",
		Description: "Idealistic, loyal to their values and to people who are important to them. Want an external life that is congruent with their values. Curious, quick to see possibilities, can be catalysts for implementing ideas. Seek to understand people and to help them fulfill their potential. Adaptable, flexible, and accepting unless a value is threatened.",
	},
	"ENFJ": {
		Code:        "ENFJ",
		Title:       "The Protagonist",
		Tagline:     "Charismatic and inspiring leaders, able to mesmerize their listeners.",
		Strengths:   []string{"Reliable", "Passion", "Altruistic", "Charismatic"},
		Weaknesses:  []string{"Overly Idealistic", "Too Sensitive", "Struggle to say No"},
		Hobbies:     []string{"Event Planning", "Blog Writing", "Cooking", "Team Sports"},
		Careers:     []Career{{"Teacher", 98}, {"Public Relations", 96}, {"Sales Manager", 94}, {"Politician", 90}, {"Coach", 95}},
		Characters:  []Character{{"Daenerys Targaryen", "Game of Thrones"}, {"Morpheus", "The Matrix"}, {"Captain America", "Marvel"}, {"Wonder Woman", "DC Comics"}},
		Movies:      []Movie{{"Dead Poets Society", "Drama"}, {"Remember the Titans", "Drama/Sport"}, {"Jerry Maguire", "Drama/Comedy"}, {"Wonder Woman", "Action"}},
		Quote:       "Real leadership is about making others better as a result of your presence.",
		Description: "Warm, empathetic, responsive, and responsible. Highly attuned to the emotions, needs, and motivations of others. Find potential in everyone, want to help others fulfill their potential. May act as catalysts for individual and group growth. Loyal, responsive to praise and criticism. Sociable, facilitate others in a group, and provide inspiring leadership.",
	},
	"ENFP": {
		Code:        "ENFP",
		Title:       "The Campaigner",
		Tagline:     "Enthusiastic, creative and sociable free spirits, who can always find a reason to smile.",
		Strengths:   []string{"Curious", "Observant", "Energetic", "Excellent Communicator"},
		Weaknesses:  []string{"Poor Practical Skills", "Find it Hard to Focus", "Overthinker"},
		Hobbies:     []string{"Traveling", "Acting", "Blogging", "Painting"},
		Careers:     []Career{{"Journalist", 98}, {"Actor", 95}, {"Event Planner", 94}, {"Teacher", 92}, {"Consultant", 90}},
		Characters:  []Character{{"Spider-Man (Peter Parker)", "Marvel"}, {"Michael Scott", "The Office"}, {"Rapunzel", "Tangled"}, {"Eleven", "Stranger Things"}},
		Movies:      []Movie{{"Everything Everywhere All At Once", "Sci-Fi/Adventure"}, {"La La Land", "Musical"}, {"Ferris Bueller's Day Off", "Comedy"}, {"School of Rock", "Comedy"}},
		Quote:       "Life is either a daring adventure or nothing at all.",
		Description: "Warmly enthusiastic and imaginative. See life as full of possibilities. Make connections between events and information very quickly, and confidently proceed based on the patterns they see. Want a lot of affirmation from others, and readily give appreciation and support. Spontaneous and flexible, often rely on their ability to improvise and their verbal fluency.",
	},

	// Sentinels
	"ISTJ": {
		Code:        "ISTJ",
		Title:       "The Logistician",
		Tagline:     "Practical and fact-minded individuals, whose reliability cannot be doubted.",
		Strengths:   []string{"Honest", "Direct", "Strong Will", "Responsible"},
		Weaknesses:  []string{"Stubborn", "Judgey", "Always by the Book"},
		Hobbies:     []string{"DIY Projects", "Reading", "Hiking", "Genealogy"},
		Careers:     []Career{{"Accountant", 99}, {"Military Officer", 96}, {"Judge", 94}, {"Police Officer", 92}, {"Data Analyst", 90}},
		Characters:  []Character{{"Ned Stark", "Game of Thrones"}, {"Hermione Granger", "Harry Potter"}, {"Darth Vader", "Star Wars"}, {"Inspector Javert", "Les Misérables"}},
		Movies:      []Movie{{"Sully", "Biography"}, {"Moneyball", "Biography/Drama"}, {"Black Hawk Down", "War"}, {"Bridge of Spies", "History"}},
		Quote:       "Facts do not cease to exist because they are ignored.",
		Description: "Quiet, serious, earn success by thoroughness and dependability. Practical, matter-of-fact, realistic, and responsible. Decide logically what should be done and work toward it steadily, regardless of distractions. Take pleasure in making everything orderly and organized - their work, their home, their life. Value traditions and loyalty.",
	},
	"ISFJ": {
		Code:        "ISFJ",
		Title:       "The Defender",
		Tagline:     "Very dedicated and warm protectors, always ready to defend their loved ones.",
		Strengths:   []string{"Supportive", "Reliable", "Patient", "Imaginative"},
		Weaknesses:  []string{"Humble", "Taking Things Personally", "Repressing Feelings"},
		Hobbies:     []string{"Cooking", "Gardening", "Volunteering", "Watching Movies"},
		Careers:     []Career{{"Nurse", 98}, {"Teacher", 96}, {"Social Worker", 94}, {"Bookkeeper", 92}, {"HR Specialist", 90}},
		Characters:  []Character{{"Captain America (Steve Rogers)", "Marvel"}, {"Samwise Gamgee", "Lord of the Rings"}, {"Dr. Watson", "Sherlock Holmes"}, {"Pam Beesly", "The Office"}},
		Movies:      []Movie{{"The Blind Side", "Biography"}, {"Dances with Wolves", "Adventure"}, {"The King's Speech", "History"}, {"Forrest Gump", "Drama"}},
		Quote:       "Love only grows by sharing. You can only have more for yourself by giving it away to others.",
		Description: "Quiet, friendly, responsible, and conscientious. Committed and steady in meeting their obligations. Thorough, painstaking, and accurate. Loyal, considerate, notice and remember specifics about people who are important to them, concerned with how others feel. Strive to create an orderly and harmonious environment at work and at home.",
	},
	"ESTJ": {
		Code:        "ESTJ",
		Title:       "The Executive",
		Tagline:     "Excellent administrators, unsurpassed at managing things - or people.",
		Strengths:   []string{"Dedicated", "Strong Willed", "Direct", "Organized"},
		Weaknesses:  []string{"Inflexible", "Uncomfortable with Emotion", "Judgmental"},
		Hobbies:     []string{"Organizing", "Coaching", "Golf", "Volunteering (Leadership)"},
		Careers:     []Career{{"General Manager", 99}, {"Insurance Agent", 96}, {"Judge", 94}, {"Principal", 92}, {"Chef", 90}},
		Characters:  []Character{{"Dwight Schrute", "The Office"}, {"Princess Leia", "Star Wars"}, {"Professor McGonagall", "Harry Potter"}, {"Boromir", "Lord of the Rings"}},
		Movies:      []Movie{{"The Founder", "Biography"}, {"Patton", "War/Biography"}, {"Whiplash", "Drama"}, {"A Few Good Men", "Drama"}},
		Quote:       "Good order is the foundation of all things.",
		Description: "Practical, realistic, matter-of-fact. Decisive, quickly move to implement decisions. Organize projects and people to get things done, focus on getting results in the most efficient way possible. Take care of routine details. Have a clear set of logical standards, systematically follow them and want others to also. Forceful in implementing their plans.",
	},
	"ESFJ": {
		Code:        "ESFJ",
		Title:       "The Consul",
		Tagline:     "Extraordinarily caring, social and popular people, always eager to help.",
		Strengths:   []string{"Strong Practical Skills", "Duty", "Loyal", "Sensitive"},
		Weaknesses:  []string{"Worried about Status", "Inflexible", "Needy"},
		Hobbies:     []string{"Cooking for others", "Event Organizing", "Socializing", "Charity"},
		Careers:     []Career{{"Event Planner", 98}, {"Nurse", 96}, {"Office Manager", 94}, {"Teacher", 92}, {"Counselor", 90}},
		Characters:  []Character{{"SpongeBob SquarePants", "Nickelodeon"}, {"Woody", "Toy Story"}, {"Monica Geller", "Friends"}, {"Sansa Stark", "Game of Thrones"}},
		Movies:      []Movie{{"Mean Girls", "Comedy"}, {"Clueless", "Comedy"}, {"Legally Blonde", "Comedy"}, {"The Help", "Drama"}},
		Quote:       "Kindness is the language which the deaf can hear and the blind can see.",
		Description: "Warmhearted, conscientious, and cooperative. Want harmony in their environment, work with determination to establish it. Like to work with others to complete tasks accurately and on time. Loyal, follow through even in small matters. Notice what others need in their day-by-day lives and try to provide it. Want to be appreciated for who they are and for what they contribute.",
	},

	// Explorers
	"ISTP": {
		Code:        "ISTP",
		Title:       "The Virtuoso",
		Tagline:     "Bold and practical experimenters, masters of all kinds of tools.",
		Strengths:   []string{"Optimistic", "Creative", "Practical", "Spontaneous"},
		Weaknesses:  []string{"Stubborn", "Insensitive", "Private", "Easily Bored"},
		Hobbies:     []string{"Mechanics", "Extreme Sports", "Carpentry", "Video Games"},
		Careers:     []Career{{"Engineer", 98}, {"Mechanic", 96}, {"Pilot", 94}, {"Forensic Scientist", 92}, {"Paramedic", 90}},
		Characters:  []Character{{"Indiana Jones", "Indiana Jones"}, {"Arya Stark", "Game of Thrones"}, {"John Wick", "John Wick"}, {"Han Solo", "Star Wars"}},
		Movies:      []Movie{{"Drive", "Acion/Crime"}, {"The Bourne Identity", "Action"}, {"Top Gun", "Action"}, {"Mad Max: Fury Road", "Action/Sci-Fi"}},
		Quote:       "I want to do it because I want to do it. Women need a reason to have sex. Men just need a place.",
		Description: "Tolerant and flexible, quiet observers until a problem appears, then act quickly to find workable solutions. Analyze what makes things work and readily get through large amounts of data to isolate the core of practical problems. Interested in cause-and-effect, organize facts using logical principles, value efficiency.",
	},
	"ISFP": {
		Code:        "ISFP",
		Title:       "The Adventurer",
		Tagline:     "Flexible and charming artists, always ready to explore and experience something new.",
		Strengths:   []string{"Charming", "Sensitive", "Imaginative", "Passionate"},
		Weaknesses:  []string{"Fiercely Independent", "Unpredictable", "Easily Stressed"},
		Hobbies:     []string{"Art", "Music", "Nature Walks", "Fashion Design"},
		Careers:     []Career{{"Artist", 98}, {"Musician", 96}, {"Chef", 94}, {"Designer", 92}, {"Veterinarian", 90}},
		Characters:  []Character{{"Harry Potter", "Harry Potter"}, {"Eleven", "Stranger Things"}, {"Jon Snow", "Game of Thrones"}, {"Legolas", "Lord of the Rings"}},
		Movies:      []Movie{{"Amélie", "Romance"}, {"Moonrise Kingdom", "Adventure"}, {"Lost in Translation", "Drama"}, {"Call Me by Your Name", "Drama/Romance"}},
		Quote:       "I found I could say things with color and shapes that I couldn't say any other way.",
		Description: "Quiet, friendly, sensitive, and kind. Enjoy the present moment, what's going on around them. Like to have their own space and to work within their own time frame. Loyal and committed to their values and to people who are important to them. Dislike disagreements and conflicts, do not force their opinions or values on others.",
	},
	"ESTP": {
		Code:        "ESTP",
		Title:       "The Entrepreneur",
		Tagline:     "Smart, energetic and very perceptive people, who truly enjoy living on the edge.",
		Strengths:   []string{"Bold", "Rational", "Original", "Perceptive"},
		Weaknesses:  []string{"Insensitive", "Impatient", "Risk-prone"},
		Hobbies:     []string{"Sports", "Gambling", "Sales", "Partying"},
		Careers:     []Career{{"Entrepreneur", 99}, {"Sales Rep", 96}, {"Stockbroker", 94}, {"Police Officer", 92}, {"Athlete", 95}},
		Characters:  []Character{{"Thor", "Marvel"}, {"Jaime Lannister", "Game of Thrones"}, {"Rocket Raccoon", "Guardians of the Galaxy"}, {"Maverick", "Top Gun"}},
		Movies:      []Movie{{"Casino Royale", "Action"}, {"Limitless", "Sci-Fi/Thriller"}, {"Ocean's Eleven", "Crime/Thriller"}, {"The Hangover", "Comedy"}},
		Quote:       "You miss 100% of the shots you don't take.",
		Description: "Flexible and tolerant, they take a pragmatic approach focused on immediate results. Theories and conceptual explanations bore them - they want to act energetically to solve the problem. Focus on the here-and-now, spontaneous, enjoy each moment that they can be active with others. Enjoy material comforts and style. Learn best through doing.",
	},
	"ESFP": {
		Code:        "ESFP",
		Title:       "The Entertainer",
		Tagline:     "Spontaneous, energetic and enthusiastic people - life is never boring around them.",
		Strengths:   []string{"Bold", "Original", "Aesthetics", "Practical"},
		Weaknesses:  []string{"Sensitive", "Conflict-Averse", "Easily Bored"},
		Hobbies:     []string{"Dancing", "Acting", "Hosting Parties", "Travel"},
		Careers:     []Career{{"Actor", 98}, {"Event Planner", 96}, {"Sales Rep", 94}, {"Tour Guide", 92}, {"Fashion Designer", 90}},
		Characters:  []Character{{"Harley Quinn", "DC Comics"}, {"Joey Tribbiani", "Friends"}, {"Peter Quill (Star-Lord)", "Marvel"}, {"Jack Dawson", "Titanic"}},
		Movies:      []Movie{{"The Great Gatsby", "Drama"}, {"Moulin Rouge!", "Musical"}, {"Magic Mike", "Comedy/Drama"}, {"Project X", "Comedy"}},
		Quote:       "Life is a party, dress like it.",
		Description: "Outgoing, friendly, and accepting. Exuberant lovers of life, people, and material comforts. Enjoy working with others to make things happen. Bring common sense and a realistic approach to their work, and make work fun. Flexible and spontaneous, adapt readily to new people and environments. Learn best by trying a new skill with other people.",
	},
}

package seeder

var firstNames = []string{
	"Aaron", "Abigail", "Adam", "Adrian", "Aiden", "Alice", "Amanda", "Amber", "Andrew", "Angela",
	"Anthony", "Ashley", "Benjamin", "Brandon", "Brian", "Brittany", "Caleb", "Carlos", "Carol", "Charles",
	"Chloe", "Christina", "Christopher", "Cynthia", "Daniel", "David", "Deborah", "Diana", "Dylan", "Edward",
	"Elena", "Elijah", "Emily", "Emma", "Eric", "Ethan", "Evelyn", "Frank", "Gabriel", "Grace",
	"Gregory", "Hannah", "Harper", "Henry", "Isaac", "Isabella", "Jack", "Jacob", "James", "Jasmine",
	"Jason", "Jennifer", "Jessica", "John", "Jonathan", "Joseph", "Joshua", "Julia", "Justin", "Karen",
	"Katherine", "Kevin", "Kimberly", "Laura", "Lauren", "Leah", "Liam", "Linda", "Logan", "Lucas",
	"Madison", "Maria", "Mark", "Mason", "Matthew", "Megan", "Melissa", "Michael", "Mia", "Natalie",
	"Nathan", "Nicholas", "Noah", "Olivia", "Patricia", "Paul", "Rachel", "Rebecca", "Richard", "Robert",
	"Samantha", "Samuel", "Sarah", "Sophia", "Stephanie", "Steven", "Thomas", "Victoria", "William", "Zoe",
}

var lastNames = []string{
	"Adams", "Allen", "Anderson", "Bailey", "Baker", "Barnes", "Bell", "Bennett", "Brooks", "Brown",
	"Butler", "Campbell", "Carter", "Castillo", "Chen", "Clark", "Collins", "Cook", "Cooper", "Cruz",
	"Davis", "Diaz", "Edwards", "Evans", "Fisher", "Flores", "Foster", "Garcia", "Gomez", "Gonzalez",
	"Gray", "Green", "Hall", "Harris", "Hayes", "Hernandez", "Hill", "Howard", "Hughes", "Jackson",
	"James", "Jenkins", "Johnson", "Jones", "Kelly", "Kim", "King", "Lee", "Lewis", "Long",
	"Lopez", "Martin", "Martinez", "Miller", "Mitchell", "Moore", "Morgan", "Morris", "Murphy", "Myers",
	"Nelson", "Nguyen", "Ortiz", "Parker", "Patel", "Perez", "Perry", "Peterson", "Phillips", "Powell",
	"Price", "Ramirez", "Reed", "Reyes", "Richardson", "Rivera", "Roberts", "Robinson", "Rodriguez", "Rogers",
	"Ross", "Russell", "Sanchez", "Sanders", "Scott", "Smith", "Stewart", "Sullivan", "Taylor", "Thomas",
	"Thompson", "Torres", "Turner", "Walker", "Ward", "Watson", "White", "Williams", "Wilson", "Young",
}

var cities = []string{
	"Arroyo Grande", "Atascadero", "Bakersfield", "Berkeley", "Carmel", "Chico", "Davis", "Eureka",
	"Fresno", "Fullerton", "Grover Beach", "Irvine", "Lompoc", "Long Beach", "Los Osos", "Merced",
	"Modesto", "Monterey", "Morro Bay", "Napa", "Oakland", "Ojai", "Oxnard", "Pasadena",
	"Paso Robles", "Pismo Beach", "Redding", "Riverside", "Sacramento", "Salinas", "San Diego", "San Jose",
	"San Luis Obispo", "San Mateo", "Santa Barbara", "Santa Cruz", "Santa Maria", "Santa Rosa", "Stockton", "Templeton",
	"Ventura", "Visalia", "Portland", "Eugene", "Salem", "Bend", "Seattle", "Spokane",
	"Tacoma", "Olympia", "Reno", "Boise", "Tucson", "Flagstaff", "Phoenix", "Denver",
	"Boulder", "Austin", "Madison", "Burlington",
}

var emailDomains = []string{
	"example.com", "example.net", "example.org", "mail.test", "inbox.test", "volunteer.test",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "and Sons", "Foundation", "Collective",
}

var bsVerbs = []string{
	"aggregate", "build", "cultivate", "deliver", "empower", "engage", "enable", "expand",
	"facilitate", "grow", "harness", "implement", "mobilize", "nurture", "organize", "restore",
	"revitalize", "strengthen", "support", "sustain",
}

var bsAdjectives = []string{
	"community", "local", "neighborhood", "regional", "grassroots", "sustainable", "inclusive", "coastal",
	"urban", "rural", "youth", "senior", "family", "green", "collaborative", "weekend",
}

var bsNouns = []string{
	"food drives", "park cleanups", "tutoring programs", "shelters", "gardens", "literacy circles",
	"blood drives", "coastal restoration", "tree plantings", "meal deliveries", "clothing swaps",
	"animal rescues", "trail maintenance", "health fairs", "book drives", "mentoring networks",
}

var loremWords = []string{
	"alias", "amet", "animi", "aperiam", "aut", "beatae", "commodi", "consequatur", "corporis", "culpa",
	"debitis", "delectus", "dolor", "dolore", "eaque", "earum", "eius", "enim", "error", "esse",
	"eum", "facere", "fuga", "harum", "illum", "ipsa", "ipsum", "itaque", "labore", "laborum",
	"magni", "maxime", "minus", "modi", "natus", "nemo", "nihil", "nobis", "odio", "officia",
	"omnis", "optio", "pariatur", "quae", "quaerat", "quia", "quis", "ratione", "rem", "saepe",
	"sequi", "similique", "sint", "sit", "tempora", "totam", "ullam", "unde", "vel", "veniam",
}

package catalog

// SeedProjects returns the sample projects shown when nothing has been stored yet.
func SeedProjects() []Project {
	return []Project{
		{
			ID:           0,
			Title:        "Minecraft Data Analysis Tool",
			Description:  "A Python application that analyzes Minecraft world data to generate insights about player behavior and world statistics.",
			Technologies: "Python, Pandas, Matplotlib, SQLite",
			Link:         "https://github.com/example/minecraft-analytics",
		},
		{
			ID:           1,
			Title:        "Blockchain Voting System",
			Description:  "A decentralized voting platform built with smart contracts, ensuring transparency and security in elections.",
			Technologies: "Solidity, Web3.js, React, Node.js",
			Link:         "https://github.com/example/blockchain-voting",
		},
		{
			ID:           2,
			Title:        "Machine Learning Stock Predictor",
			Description:  "An AI model that predicts stock prices using historical data and sentiment analysis from news articles.",
			Technologies: "Python, TensorFlow, Scikit-learn, BeautifulSoup",
			Link:         "https://github.com/example/stock-predictor",
		},
	}
}

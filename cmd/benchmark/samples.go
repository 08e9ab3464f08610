package main

// Sample is one benchmark input.
type Sample struct {
	Name string
	Text string
}

// Samples are machine-sounding texts at increasing lengths, used for
// latency measurement.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "It is important to note that the meeting has been rescheduled. Furthermore, all participants are encouraged to review the agenda.",
	},
	{
		Name: "short",
		Text: `In today's fast-paced digital landscape, effective communication is paramount. Organizations that leverage collaborative tools can streamline workflows and enhance productivity. Moreover, it is essential to foster a culture of transparency in order to ensure that every team member feels valued and empowered.`,
	},
	{
		Name: "medium",
		Text: `Remote work has fundamentally transformed the way organizations operate. It is worth noting that this shift offers numerous benefits, including increased flexibility, reduced commuting time, and access to a broader talent pool.

However, it is important to acknowledge that remote work also presents several challenges. Employees may experience feelings of isolation, and managers may find it difficult to maintain team cohesion. Additionally, the boundaries between professional and personal life can become blurred.

In conclusion, organizations must adopt a balanced approach. By implementing clear communication guidelines, investing in the right technology, and prioritizing employee well-being, companies can harness the advantages of remote work while mitigating its drawbacks.`,
	},
	{
		Name: "long",
		Text: `Artificial intelligence is rapidly reshaping numerous industries across the globe. From healthcare to finance, AI-driven solutions are enabling organizations to process vast amounts of data, identify patterns, and make informed decisions with unprecedented speed and accuracy.

In the healthcare sector, AI algorithms are being utilized to analyze medical images, predict patient outcomes, and personalize treatment plans. This has the potential to significantly improve the quality of care while simultaneously reducing costs. Furthermore, AI-powered chatbots are increasingly being deployed to handle routine patient inquiries, thereby freeing up medical professionals to focus on more complex tasks.

The financial industry has likewise embraced AI technologies. Banks and investment firms leverage machine learning models to detect fraudulent transactions, assess credit risk, and optimize trading strategies. It is important to note that these applications require robust governance frameworks to ensure fairness and accountability.

Nevertheless, the widespread adoption of AI raises significant ethical considerations. Concerns regarding data privacy, algorithmic bias, and job displacement must be addressed in a thoughtful and comprehensive manner. Policymakers, industry leaders, and researchers must collaborate to establish guidelines that promote responsible innovation.

In summary, while artificial intelligence offers transformative opportunities, it is imperative that stakeholders navigate its challenges with care. By doing so, society can unlock the full potential of AI while safeguarding fundamental values.`,
	},
}

// QualitySamples are short texts with recognisable robotic phrasing, used
// in quality mode to eyeball the rewrite.
var QualitySamples = []Sample{
	{
		Name: "transitions",
		Text: "Firstly, the product is reliable. Secondly, it is affordable. Lastly, it is easy to use. In conclusion, it is an excellent choice.",
	},
	{
		Name: "hedging",
		Text: "It could be argued that the proposed solution may potentially offer certain advantages in some scenarios.",
	},
	{
		Name: "buzzwords",
		Text: "Our innovative platform leverages cutting-edge synergies to deliver seamless, best-in-class solutions that empower stakeholders.",
	},
	{
		Name: "grammar",
		Text: "The team have went to the conference and they was very impressed by the keynote, which were about cloud computing.",
	},
	{
		Name: "formal-email",
		Text: "I hope this message finds you well. I am writing to inform you that your request has been received and is currently being processed. Please do not hesitate to reach out should you have any further questions.",
	},
	{
		Name: "listy",
		Text: "Exercise offers many benefits, including improved cardiovascular health, enhanced mood, increased energy levels, better sleep quality, and reduced stress.",
	},
}

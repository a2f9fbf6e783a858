package llm

const analysisPrompt = `You are a travel expert. Analyze the image provided and provide the following information in a JSON format:
- "landmarkName": The name of the landmark, city, or place.
- "description": A captivating and interesting description of the place.
- "location": A JSON object with "city" and "country".
- "personalizedRecommendations": An array of 3-4 personalized and actionable travel tips or recommendations for someone visiting this place.
- "photoTips": A creative tip for taking a great photo at this location.

Output as JSON only, no other text:
{
  "landmarkName": "name of the landmark",
  "description": "description of the place",
  "location": {"city": "city", "country": "country"},
  "personalizedRecommendations": ["tip 1", "tip 2", "tip 3"],
  "photoTips": "photo tip"
}`

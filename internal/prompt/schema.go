package prompt

import genai "google.golang.org/genai"

// Difficulty levels a generated project may carry. The same closed set
// is enforced locally after decoding.
var DifficultyLevels = []string{"Beginner", "Intermediate", "Advanced"}

// ProjectListSchema describes an array of project suggestions.
func ProjectListSchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: projectSchema(),
	}
}

func projectSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "Short project title."},
			"description": {Type: genai.TypeString, Description: "What the project builds and why it teaches the language."},
			"skills":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"difficulty":  {Type: genai.TypeString, Enum: DifficultyLevels},
		},
		Required: []string{"title", "description", "skills", "difficulty"},
	}
}

// ChallengeSchema describes one coding challenge.
func ChallengeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString, Description: "Full problem statement."},
			"examples":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"hint":        {Type: genai.TypeString},
		},
		Required: []string{"title", "description"},
	}
}

// EvaluationSchema describes the verdict on a submitted solution.
func EvaluationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"correct":     {Type: genai.TypeBoolean},
			"feedback":    {Type: genai.TypeString, Description: "What works, what does not, and why."},
			"suggestions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"correct", "feedback"},
	}
}

// StringListSchema describes a flat array of strings.
func StringListSchema(desc string) *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString, Description: desc},
	}
}

package llm

import (
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const locationSystemPrompt = `You prepare nested JSON arrays of strings for an online geocoding service that is very sensitive to spelling and exact wording. The strings describe locations within the City of Cape Town affected by service outages.

You receive JSON objects that may contain an "area" field, naming a wider area from a controlled list, and always contain a "location" field with one or more specific locations in free text.

Place each location in a separate array and drop references to generic parts of the City (e.g. Southern Suburbs). Give up to 5 suggestions per location: the first stays close to the text as given, the rest vary suffixes (St, Rd, Cres) and spelling using your knowledge of Cape Town addresses.

Only return the array of arrays for the last object given.`

const fixLocationsPrompt = "Please fix this to only be nested JSON array(s) of the location(s) in the last JSON object I provided you with. Only return the corrected JSON array."

var locationExamples = [][2]string{
	{`{"area": "BELLVILLE CBD", "location": "Ridgeworth and Bloemhof"}`,
		`[["Ridgeworth, Bellville CBD", "Ridgeworth, Bellville"], ["Bloemhof, Bellville CBD", "Bloemhof, Bellville"]]`},
	{`{"area": "MILNERTON", "location": "Milnerton area"}`,
		`[["Milnerton"]]`},
	{`{"area": "MAMRE", "location": "Lavender St & surr"}`,
		`[["Lavender St, Mamre", "Lavender Cres, Mamre", "Lavender Rd, Mamre"]]`},
}

func locationMessages(payload string) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{message(openai.ChatMessageRoleSystem, locationSystemPrompt)}
	for _, ex := range locationExamples {
		messages = append(messages,
			message(openai.ChatMessageRoleUser, ex[0]),
			message(openai.ChatMessageRoleAssistant, ex[1]),
		)
	}
	return append(messages, message(openai.ChatMessageRoleUser, payload))
}

func draftSystemPrompt(limit int) string {
	return fmt.Sprintf(`Draft social media posts of %d characters or less about City of Cape Town service outages or updates, using the details in the provided JSON objects. The "service_area" field is the responsible department. Prioritise location, date and time information; technical details can be left out. When a "request_number" field is present, encourage quoting it when contacting the City. Adopt a formal but polite tone and correct obvious spelling errors to South African English. Only return the content of the post for the last JSON object given.`, limit)
}

var draftExamples = [][2]string{
	{`{"service_area":"Electricity","title":"Cable stolen","description":"Cable stolen","area":"LWANDLE","location":"Noxolo st&surr","start_timestamp":"2023-09-21T09:00:00","forecast_end_timestamp":"2023-09-23T13:00:00","planned":false}`,
		"Electricity outage in Lwandle, Noxolo St & surrounds due to cable theft. Restoration expected by 1pm, 23 Sep."},
	{`{"service_area":"Water & Sanitation","title":"Burst Water Main","description":"Water streaming down the road. Motorists to exercise caution.","area":"SONEIKE II","location":"PAUL KRUGER, SONEIKE II","start_timestamp":"2024-03-28T14:32:00","forecast_end_timestamp":"2024-03-29T20:00:00","planned":false}`,
		"Burst water main\nPaul Kruger, Soneike\nMar 28, 14:32 - Mar 29, 20:00\nWater running down the road. Motorists to exercise caution."},
}

func draftMessages(limit int, payload string) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{message(openai.ChatMessageRoleSystem, draftSystemPrompt(limit))}
	for _, ex := range draftExamples {
		messages = append(messages,
			message(openai.ChatMessageRoleUser, ex[0]),
			message(openai.ChatMessageRoleAssistant, ex[1]),
		)
	}
	return append(messages, message(openai.ChatMessageRoleUser, payload))
}

func shortenMessages(limit int, post string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		message(openai.ChatMessageRoleSystem, fmt.Sprintf(
			"You shorten social media posts. Summarise the post that follows to no more than %d characters. "+
				"Summarise long lists using words like multiple or many, and prioritise dates and areas over causes. "+
				"Only return the summarised post.", limit)),
		message(openai.ChatMessageRoleUser, post),
	}
}

package usecase

import (
	"fmt"

	"github.com/satriahrh/monologue/domain/entities"
)

const monologuePromptTemplate = `Write a podcast monologue on the topic: "%s".
Keep the length limited to about 300 words.
It should sound like a natural host talking directly to the audience, without using any speaker labels like "Host:", and without any directions like "(music fades)" or "(laughs)".

Only focus on the content of the talk itself.

The style should be casual, engaging, and conversational, as if the host is speaking freely and telling a story, including examples, questions, and smooth transitions.

Do not include any formatting, brackets, or stage directions. Just pure spoken words as they would sound in a real podcast.
`

// BuildPrompt renders the monologue instructions for a topic
func BuildPrompt(topic entities.Topic) string {
	return fmt.Sprintf(monologuePromptTemplate, topic.String())
}

package summarizer

// DefaultPrompt is the instruction text sent with every recording.
const DefaultPrompt = `Summarize this meeting recording. Cover the main topics discussed,
key decisions made, and any important information shared.

Then add a separate section headed "Action Items" containing a bullet list of
tasks or follow-ups. For each action item include the assignee and due date
when they are stated in the audio or video.`

// FallbackMessage is the fixed summary text substituted when the model call
// fails, for example when the recording exceeds the request size limit.
const FallbackMessage = "File is too big to process"

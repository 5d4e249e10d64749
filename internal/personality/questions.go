package personality

// Questions is the fixed 50-item bank. Agreement with a Direction 1 item
// pushes its axis toward the right pole (E, S, T, J).
var Questions = []Question{
	{ID: 1, Axis: EI, Direction: 1, Text: "I feel energized after spending extended time interacting with others."},
	{ID: 2, Axis: EI, Direction: 1, Text: "I prefer discussing ideas out loud rather than thinking them through alone."},
	{ID: 3, Axis: EI, Direction: 1, Text: "In group settings, I naturally take the initiative to speak or act."},
	{ID: 4, Axis: EI, Direction: 1, Text: "I find long periods of solitude mentally draining."},
	{ID: 5, Axis: EI, Direction: 1, Text: "I enjoy environments with high activity and stimulation."},
	{ID: 6, Axis: EI, Direction: 1, Text: "I think best when bouncing ideas off other people."},
	{ID: 7, Axis: EI, Direction: 1, Text: "I am comfortable being the center of attention when needed."},
	{ID: 8, Axis: EI, Direction: 1, Text: "I often process thoughts externally rather than internally."},
	{ID: 9, Axis: EI, Direction: 1, Text: "I seek external engagement when I feel mentally stuck."},
	{ID: 10, Axis: EI, Direction: 1, Text: "I prefer active collaboration over independent work."},
	{ID: 11, Axis: EI, Direction: 1, Text: "I feel more motivated when surrounded by others."},
	{ID: 12, Axis: EI, Direction: 1, Text: "Social interaction increases my overall energy level."},

	{ID: 13, Axis: SN, Direction: 1, Text: "I focus more on concrete facts than abstract possibilities."},
	{ID: 14, Axis: SN, Direction: 1, Text: "I trust direct experience over theoretical explanations."},
	{ID: 15, Axis: SN, Direction: 1, Text: "I prefer practical solutions over imaginative ones."},
	{ID: 16, Axis: SN, Direction: 1, Text: "I notice details that others often overlook."},
	{ID: 17, Axis: SN, Direction: 1, Text: "I am more interested in how things work now than how they might evolve."},
	{ID: 18, Axis: SN, Direction: 1, Text: "I rely on proven methods rather than experimenting with new ideas."},
	{ID: 19, Axis: SN, Direction: 1, Text: "I prefer step-by-step instructions over conceptual overviews."},
	{ID: 20, Axis: SN, Direction: 1, Text: "I feel more comfortable dealing with reality than speculation."},
	{ID: 21, Axis: SN, Direction: 1, Text: "I value accuracy more than innovation."},
	{ID: 22, Axis: SN, Direction: 1, Text: "I focus on what is tangible rather than what is implied."},
	{ID: 23, Axis: SN, Direction: 1, Text: "I prefer clarity over ambiguity."},
	{ID: 24, Axis: SN, Direction: 1, Text: "I trust what I can observe more than what I can infer."},

	{ID: 25, Axis: TF, Direction: 1, Text: "I prioritize logic over emotions when making decisions."},
	{ID: 26, Axis: TF, Direction: 1, Text: "I believe fairness should be objective, not personal."},
	{ID: 27, Axis: TF, Direction: 1, Text: "I value rational analysis more than emotional harmony."},
	{ID: 28, Axis: TF, Direction: 1, Text: "I find it easy to separate feelings from facts."},
	{ID: 29, Axis: TF, Direction: 1, Text: "I prefer honest criticism over emotional reassurance."},
	{ID: 30, Axis: TF, Direction: 1, Text: "I make decisions based on consistency rather than compassion."},
	{ID: 31, Axis: TF, Direction: 1, Text: "I believe truth is more important than tact."},
	{ID: 32, Axis: TF, Direction: 1, Text: "I am comfortable making tough decisions even if they upset others."},
	{ID: 33, Axis: TF, Direction: 1, Text: "I trust structured reasoning more than personal values."},
	{ID: 34, Axis: TF, Direction: 1, Text: "I prefer efficiency over emotional considerations."},
	{ID: 35, Axis: TF, Direction: 1, Text: "I analyze problems impersonally."},
	{ID: 36, Axis: TF, Direction: 1, Text: "I value correctness more than consensus."},
	{ID: 37, Axis: TF, Direction: 1, Text: "Emotional factors should not outweigh logical conclusions."},

	{ID: 38, Axis: JP, Direction: 1, Text: "I prefer having a clear plan before starting a task."},
	{ID: 39, Axis: JP, Direction: 1, Text: "I feel uneasy when things are left open-ended."},
	{ID: 40, Axis: JP, Direction: 1, Text: "I like to finish tasks well before deadlines."},
	{ID: 41, Axis: JP, Direction: 1, Text: "I feel more comfortable when decisions are finalized."},
	{ID: 42, Axis: JP, Direction: 1, Text: "I prefer structure over spontaneity."},
	{ID: 43, Axis: JP, Direction: 1, Text: "I like organizing tasks ahead of time."},
	{ID: 44, Axis: JP, Direction: 1, Text: "I find last-minute changes stressful."},
	{ID: 45, Axis: JP, Direction: 1, Text: "I prefer closure over keeping options open."},
	{ID: 46, Axis: JP, Direction: 1, Text: "I work best with schedules and routines."},
	{ID: 47, Axis: JP, Direction: 1, Text: "I dislike improvising under pressure."},
	{ID: 48, Axis: JP, Direction: 1, Text: "I prefer predictable environments."},
	{ID: 49, Axis: JP, Direction: 1, Text: "I like knowing what to expect in advance."},
	{ID: 50, Axis: JP, Direction: 1, Text: "I feel satisfied when things are settled and decided."},
}

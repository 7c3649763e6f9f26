package main

// Sample is a benchmark input.
type Sample struct {
	Name string
	Text string
}

// Samples span one sentence up to several paragraphs so that humanize
// word-count and paragraph constraints are exercised at different sizes.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "Could you take a look at the draft before Friday? I am not sure the second section reads well.",
	},
	{
		Name: "short",
		Text: `The quarterly report is finished and uploaded to the shared folder. Revenue grew by eight percent compared to last quarter, mostly because of the new subscription tier.

Please send me any comments by Thursday so I can prepare the final version for the board meeting.`,
	},
	{
		Name: "medium",
		Text: `Remote work has changed how teams communicate. Meetings that used to happen in a hallway now need a calendar invite, and small questions often wait hours for an answer because people are focused on their own tasks.

Some teams respond by adding more meetings, which fragments the day and leaves little room for deep work. Others lean on written updates, which are easier to skim but can feel impersonal and slow down decisions.

The teams that seem happiest pick a few fixed moments for live conversation and keep everything else asynchronous. They write decisions down, link to them often, and accept that not every question needs an instant reply.`,
	},
	{
		Name: "long",
		Text: `When the city opened its first protected bike lane, many residents were skeptical. Drivers worried about losing parking, shop owners feared fewer customers, and even some cyclists doubted that a single lane would make a difference.

Two years later the numbers tell a different story. Bike trips along the corridor have tripled, collisions involving pedestrians dropped by a third, and most of the businesses on the street report steady or higher sales. The parking that was removed turned out to be used mainly by commuters who now take the train.

The project was not perfect. Delivery trucks still block the lane during the morning rush, and the intersection near the school remains confusing for everyone. The city has promised loading zones and a new signal phase, but both have been delayed by budget discussions.

What the experiment did show is that streets are not fixed. A modest change, tested carefully and measured honestly, can shift habits faster than anyone expected. The next question is whether the council is willing to repeat the experiment on busier roads where the trade-offs are harder.`,
	},
}

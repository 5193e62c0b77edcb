package seeds

// Demo account created by cmd/seed.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo-password"
)

// SampleTexts are run through the real analysis path when seeding, so a
// fresh instance has content covering all three sentiment labels.
var SampleTexts = []string{
	"What a great day! The product launch was a huge success and the whole team is happy with the results.",
	"I love this new coffee place around the corner. Excellent espresso and amazing pastries.",
	"The quarterly report arrived on Tuesday and was distributed to all department heads for review.",
	"Terrible experience with the delivery service. The package arrived damaged and support was awful.",
	"Our team suffered a bad loss in the finals, and the mood in the locker room was sad and quiet.",
	"The library will be closed on public holidays. Opening hours are otherwise unchanged.",
	"Great news everyone: the migration finished without a single error. Excellent work all around.",
	"I hate waiting in line for hours only for the office to close right before my turn. Horrible.",
}

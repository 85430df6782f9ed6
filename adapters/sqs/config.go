package sqsevents

// Config configures the SQS-backed events publisher.
type Config struct {
	// QueueURL is the full SQS queue URL. Required.
	QueueURL string
	// Region overrides the AWS config chain region when set.
	Region string
	// FIFO enables FIFO message group/dedup fields.
	FIFO bool
	// MessageGroupID sets the FIFO group; defaults to the activity name so
	// per-activity ordering is preserved.
	MessageGroupID string
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/great123-artV/GradeX/ent/chatmessage"
	"github.com/great123-artV/GradeX/ent/course"
	"github.com/great123-artV/GradeX/ent/llmrequestevent"
	"github.com/great123-artV/GradeX/ent/profile"
	"github.com/great123-artV/GradeX/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescTimestamp is the schema descriptor for timestamp field.
	chatmessageDescTimestamp := chatmessageMixinFields0[1].Descriptor()
	// chatmessage.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatmessage.DefaultTimestamp = chatmessageDescTimestamp.Default.(func() time.Time)
	// chatmessageDescMood is the schema descriptor for mood field.
	chatmessageDescMood := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultMood holds the default value on creation for the mood field.
	chatmessage.DefaultMood = chatmessageDescMood.Default.(string)
	// chatmessageDescSource is the schema descriptor for source field.
	chatmessageDescSource := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultSource holds the default value on creation for the source field.
	chatmessage.DefaultSource = chatmessageDescSource.Default.(string)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCode is the schema descriptor for code field.
	courseDescCode := courseFields[1].Descriptor()
	// course.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	course.CodeValidator = courseDescCode.Validators[0].(func(string) error)
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[2].Descriptor()
	// course.DefaultTitle holds the default value on creation for the title field.
	course.DefaultTitle = courseDescTitle.Default.(string)
	// courseDescUnits is the schema descriptor for units field.
	courseDescUnits := courseFields[3].Descriptor()
	// course.UnitsValidator is a validator for the "units" field. It is called by the builders before save.
	course.UnitsValidator = courseDescUnits.Validators[0].(func(int) error)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[7].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[8].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.DefaultID holds the default value on creation for the id field.
	course.DefaultID = courseDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[0].Descriptor()
	// profile.DefaultName holds the default value on creation for the name field.
	profile.DefaultName = profileDescName.Default.(string)
	// profileDescLevel is the schema descriptor for level field.
	profileDescLevel := profileFields[1].Descriptor()
	// profile.DefaultLevel holds the default value on creation for the level field.
	profile.DefaultLevel = profileDescLevel.Default.(string)
	// profileDescSemester is the schema descriptor for semester field.
	profileDescSemester := profileFields[2].Descriptor()
	// profile.DefaultSemester holds the default value on creation for the semester field.
	profile.DefaultSemester = profileDescSemester.Default.(string)
	// profileDescAbout is the schema descriptor for about field.
	profileDescAbout := profileFields[3].Descriptor()
	// profile.DefaultAbout holds the default value on creation for the about field.
	profile.DefaultAbout = profileDescAbout.Default.(string)
	// profileDescPriorCgpa is the schema descriptor for prior_cgpa field.
	profileDescPriorCgpa := profileFields[4].Descriptor()
	// profile.DefaultPriorCgpa holds the default value on creation for the prior_cgpa field.
	profile.DefaultPriorCgpa = profileDescPriorCgpa.Default.(float64)
	// profileDescPriorUnits is the schema descriptor for prior_units field.
	profileDescPriorUnits := profileFields[5].Descriptor()
	// profile.DefaultPriorUnits holds the default value on creation for the prior_units field.
	profile.DefaultPriorUnits = profileDescPriorUnits.Default.(int)
	// profile.PriorUnitsValidator is a validator for the "prior_units" field. It is called by the builders before save.
	profile.PriorUnitsValidator = profileDescPriorUnits.Validators[0].(func(int) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[6].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
}

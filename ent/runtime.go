// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tatumgames/tatumtech/ent/answerrecord"
	"github.com/tatumgames/tatumtech/ent/question"
	"github.com/tatumgames/tatumtech/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerrecordMixin := schema.AnswerRecord{}.Mixin()
	answerrecordMixinFields0 := answerrecordMixin[0].Fields()
	_ = answerrecordMixinFields0
	answerrecordFields := schema.AnswerRecord{}.Fields()
	_ = answerrecordFields
	// answerrecordDescTimestamp is the schema descriptor for timestamp field.
	answerrecordDescTimestamp := answerrecordMixinFields0[1].Descriptor()
	// answerrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerrecord.DefaultTimestamp = answerrecordDescTimestamp.Default.(func() time.Time)
	// answerrecordDescSessionID is the schema descriptor for session_id field.
	answerrecordDescSessionID := answerrecordFields[0].Descriptor()
	// answerrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerrecord.SessionIDValidator = answerrecordDescSessionID.Validators[0].(func(string) error)
	// answerrecordDescQuestionID is the schema descriptor for question_id field.
	answerrecordDescQuestionID := answerrecordFields[1].Descriptor()
	// answerrecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerrecord.QuestionIDValidator = answerrecordDescQuestionID.Validators[0].(func(string) error)
	// answerrecordDescLanguage is the schema descriptor for language field.
	answerrecordDescLanguage := answerrecordFields[2].Descriptor()
	// answerrecord.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	answerrecord.LanguageValidator = answerrecordDescLanguage.Validators[0].(func(string) error)
	// answerrecordDescLevel is the schema descriptor for level field.
	answerrecordDescLevel := answerrecordFields[3].Descriptor()
	// answerrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	answerrecord.LevelValidator = answerrecordDescLevel.Validators[0].(func(string) error)
	// answerrecordDescPlatform is the schema descriptor for platform field.
	answerrecordDescPlatform := answerrecordFields[4].Descriptor()
	// answerrecord.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	answerrecord.PlatformValidator = answerrecordDescPlatform.Validators[0].(func(string) error)
	// answerrecordDescAnswerText is the schema descriptor for answer_text field.
	answerrecordDescAnswerText := answerrecordFields[5].Descriptor()
	// answerrecord.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	answerrecord.AnswerTextValidator = answerrecordDescAnswerText.Validators[0].(func(string) error)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[1].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescLanguage is the schema descriptor for language field.
	questionDescLanguage := questionFields[2].Descriptor()
	// question.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	question.LanguageValidator = questionDescLanguage.Validators[0].(func(string) error)
	// questionDescLevel is the schema descriptor for level field.
	questionDescLevel := questionFields[3].Descriptor()
	// question.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	question.LevelValidator = questionDescLevel.Validators[0].(func(string) error)
	// questionDescPlatform is the schema descriptor for platform field.
	questionDescPlatform := questionFields[4].Descriptor()
	// question.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	question.PlatformValidator = questionDescPlatform.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(int)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[6].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[8].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
}

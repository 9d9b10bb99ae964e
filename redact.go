package securetypes

// Redacted is the fixed marker every container emits from String and Format
// in place of its content, regardless of verb or flags.
const Redacted = "***SECRET***"

package gemini

const extractionRules = `
Return ONLY valid JSON: an array of objects with this shape, no markdown, no explanations.

[
  {
    "name": string,
    "type": "tablet" | "syrup" | "other",
    "intakeTimes": ["Before Breakfast" | "After Breakfast" | "Before Lunch" | "After Lunch" | "Before Dinner" | "After Dinner"],
    "customTimes": ["HH:MM" 24h],
    "frequency": "Daily" | "Alternate Days",
    "doseCount": number,
    "isCritical": boolean,
    "durationDays": number
  }
]

Rules:
- Keep the medicine name as written, including strength (e.g. "Paracetamol 500mg").
- tablet: tablets, capsules, pills. syrup: syrups, suspensions, liquids. other: everything else.
- Convert dosage patterns: "1-0-1" => ["After Breakfast", "After Dinner"], "1-1-1" => all three "After" slots, "0-0-1" => ["After Dinner"].
- morning => "After Breakfast", afternoon => "After Lunch", evening/night => "After Dinner", empty stomach => "Before Breakfast".
- customTimes only when clock times are written. Otherwise [].
- doseCount: tablets per intake, or ml for syrup.
- durationDays: "2 weeks" => 14, "1 month" => 30. Unknown => 7.
- isCritical: true for antibiotics or explicit "do not skip" warnings.
- Skip unreadable medicines. If the input is not a prescription, return [].
`

const filePrompt = `You are a medical prescription extraction system. Extract ALL medicines in this prescription.` + extractionRules

const textPrompt = `Extract the medicines mentioned in the following patient note.` + extractionRules + `
Note:
`

const summaryPrompt = `You are a medical adherence analyst. Write one short paragraph (max 4 sentences) summarizing this patient's medication adherence for a caretaker.
Mention the overall percentage and the medicine that needs the most attention. Plain text only, no markdown, no JSON.

Adherence statistics (last logs, percentages are taken / (taken + delayed + missed)):
`

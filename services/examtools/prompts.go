package examtools

const examAnswerPrompt = `You are an expert exam preparation tutor. Generate a COMPREHENSIVE 16-mark answer for the following question.

QUESTION: %s

CONTEXT FROM STUDY MATERIALS:
%s

STRUCTURE YOUR ANSWER AS FOLLOWS:

**INTRODUCTION** (2 marks):
- Brief overview of the topic
- Scope of the answer

**MAIN BODY** (10-12 marks):
Provide 4-5 major points, each worth 2-3 marks:
1. **Point 1**: [Detailed explanation with examples]
2. **Point 2**: [Detailed explanation with examples]
3. **Point 3**: [Detailed explanation with examples]
4. **Point 4**: [Detailed explanation with examples]
5. **Point 5** (if applicable): [Detailed explanation]

**EXAMPLES/CASE STUDIES** (2 marks):
- Real-world examples or case studies
- Relevant diagrams or flowcharts (describe them)

**CONCLUSION** (2 marks):
- Summary of key points
- Future implications or significance

IMPORTANT:
- Each point should be well-elaborated (3-4 sentences minimum)
- Include technical terms and definitions
- Cite specific facts, figures, or theories
- Make it comprehensive enough to earn full 16 marks
- Use proper formatting with headings and bullet points

Generate the answer now:`

const studyPlanPrompt = `You are an expert study planner. Create a DETAILED day-by-day study schedule.

IMPORTANT: The exam is on %s (%d days from now).

INPUTS:
- Topics to cover:
%s
- Days until exam: %d days
- Study hours per day: %d hours

CREATE A STUDY PLAN WITH:

1. **Week-by-week breakdown**:
   - Divide topics strategically across weeks
   - Include revision cycles (20%% of time)
   - Build in buffer days for unexpected delays

2. **Daily schedule format**:
   DAY X (Date):
   - Morning (1.5 hrs): [Topic/Activity]
   - Evening (1.5 hrs): [Topic/Activity]
   - Quick revision: [Previous topics]

3. **Milestones**:
   - Weekly targets
   - Mock exams/practice tests schedule
   - Final revision week plan

4. **Study techniques**:
   - Recommend active recall, spaced repetition
   - Suggest breaks and rest days

Generate a COMPLETE study plan now:`

const quizPrompt = `Generate a quiz on the topic: %s

NUMBER OF QUESTIONS: %d
DIFFICULTY LEVEL: %s

CONTEXT FROM STUDY MATERIALS:
%s

For each question, provide:

**MCQ Questions** (Format):
1. Question text
   A) Option A
   B) Option B
   C) Option C
   D) Option D

   **Correct Answer**: [Letter]
   **Explanation**: [Why this is correct and others are wrong]

Include a mix of:
- Conceptual understanding questions
- Application-based questions
- Fact-recall questions (for %s difficulty)

Generate %d high-quality questions now:`

const flashcardsPrompt = `Create %d flashcards for the topic: %s

CONTEXT FROM STUDY MATERIALS:
%s

FORMAT each flashcard as:

**Card X:**
- **FRONT** (Question/Term): [Question or key term]
- **BACK** (Answer/Definition): [Concise answer or definition]
- **Hint**: [Memory aid or mnemonic]

GUIDELINES:
- Focus on key concepts, definitions, formulas
- Keep answers concise but complete
- Include memory aids where helpful
- Mix different types: definitions, processes, comparisons

Generate %d flashcards now:`

const explainConceptPrompt = `Explain the following concept in detail: %s

DIFFICULTY LEVEL: %s

CONTEXT FROM STUDY MATERIALS:
%s

STRUCTURE YOUR EXPLANATION:

**1. SIMPLE DEFINITION** (ELI5):
[Explain like I'm 5 - simple, intuitive explanation]

**2. FORMAL DEFINITION**:
[Academic/technical definition]

**3. KEY COMPONENTS/ASPECTS**:
- Component 1: [Explanation]
- Component 2: [Explanation]
- Component 3: [Explanation]

**4. REAL-WORLD EXAMPLES**:
- Example 1: [Concrete example]
- Example 2: [Another example]

**5. COMMON MISCONCEPTIONS**:
- Misconception 1: [Clarification]
- Misconception 2: [Clarification]

**6. RELATED CONCEPTS**:
- How it connects to other topics

**7. EXAM TIP**:
[How this concept typically appears in exams]

Provide the explanation now:`

const importantQuestionsPrompt = `Based on the topic: %s

CONTEXT FROM STUDY MATERIALS:
%s

Generate %d MOST IMPORTANT questions that are likely to appear in exams.

For each question, provide:

**Question X** ([Marks: 2/5/10/16]):
[Question text]

**Why This is Important**:
[Explain why this question is commonly asked]

**Key Points to Include in Answer**:
- Point 1
- Point 2
- Point 3

Include a variety of question types:
- Short answer (2-5 marks)
- Long answer (10-16 marks)
- Application-based questions
- Conceptual questions

Generate the questions now:`

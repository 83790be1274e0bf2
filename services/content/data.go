package content

// Fixed carvedilol monograph deck: 7 slides, 14 multiple-choice questions.
// Slide 1 is the title/overview slide and intentionally carries no questions.

var carvedilolSlides = []Slide{
	{
		Number: 1,
		Title:  "Carvedilol: Overview",
		Body: `Welcome to this presentation on carvedilol. Carvedilol is a third-generation beta-blocker used primarily in the management of heart failure with reduced ejection fraction, hypertension, and left ventricular dysfunction following myocardial infarction. Unlike earlier beta-blockers, carvedilol combines non-selective beta-adrenergic blockade with alpha-1 receptor blockade, giving it a distinctive hemodynamic profile. Over the next slides we will walk through its mechanism of action, approved indications, dosing and titration strategy, contraindications, adverse effects, and the drug interactions and monitoring parameters that matter in day-to-day practice.`,
		Context: `Carvedilol was approved by the FDA in 1995 and became one of the cornerstone therapies of modern heart failure management after the landmark US Carvedilol Heart Failure Study and the COPERNICUS trial demonstrated significant mortality reductions. It is available as immediate-release tablets (3.125, 6.25, 12.5, and 25 mg) taken twice daily and as an extended-release capsule (Coreg CR) taken once daily. Carvedilol is a racemic mixture: the S(-) enantiomer carries the beta-blocking activity while both enantiomers contribute alpha-1 blockade.`,
	},
	{
		Number: 2,
		Title:  "Mechanism of Action",
		Body: `Carvedilol blocks three adrenergic receptor types. It is a non-selective beta-blocker, antagonizing both beta-1 receptors in the heart and beta-2 receptors in bronchial and vascular smooth muscle. In addition, it blocks alpha-1 receptors in the peripheral vasculature, producing vasodilation and reducing afterload. This combination lowers heart rate, reduces myocardial contractility and oxygen demand, and decreases peripheral vascular resistance. Carvedilol also has antioxidant properties that may limit oxidative injury to the myocardium, a feature not shared by most other beta-blockers.`,
		Context: `The beta-1 blockade slows sinus rate and atrioventricular conduction and suppresses renin release from the juxtaglomerular apparatus. The beta-2 blockade explains why carvedilol can precipitate bronchospasm in reactive airway disease and can blunt catecholamine-mediated recovery from hypoglycemia. The alpha-1 blockade is responsible for orthostatic hypotension early in therapy, which is why dose titration is slow and the drug is taken with food to slow absorption. Carvedilol has no intrinsic sympathomimetic activity and exhibits membrane-stabilizing activity only at high concentrations. The antioxidant effect, attributed to the carbazole moiety, scavenges free radicals and inhibits lipid peroxidation in experimental models.`,
	},
	{
		Number: 3,
		Title:  "Indications",
		Body: `Carvedilol carries three principal approved indications. First, mild to severe chronic heart failure with reduced ejection fraction, where it reduces mortality and hospitalization when added to standard therapy. Second, left ventricular dysfunction following myocardial infarction in clinically stable patients with an ejection fraction of 40 percent or less. Third, essential hypertension, usually as part of combination therapy. In heart failure, carvedilol is one of only three beta-blockers with proven mortality benefit, alongside metoprolol succinate and bisoprolol.`,
		Context: `The COPERNICUS trial studied carvedilol in severe heart failure (EF < 25%) and found a 35% relative reduction in all-cause mortality, establishing that even advanced but euvolemic patients benefit. CAPRICORN established the post-MI indication, showing reduced all-cause mortality when carvedilol was started in stable patients with LV dysfunction after infarction. COMET compared carvedilol with short-acting metoprolol tartrate and favored carvedilol for survival, though the comparator formulation remains debated. Beta-blockers are no longer first-line monotherapy for uncomplicated hypertension, so the hypertension indication is mostly relevant when there is a compelling cardiac comorbidity.`,
	},
	{
		Number: 4,
		Title:  "Dosing and Titration",
		Body: `In heart failure, carvedilol is started low and titrated slowly: 3.125 mg twice daily for two weeks, then doubled at intervals of at least two weeks as tolerated, to a target of 25 mg twice daily, or 50 mg twice daily in patients weighing more than 85 kilograms. For hypertension and post-MI left ventricular dysfunction, the usual starting dose is 6.25 mg twice daily. Carvedilol should be taken with food to slow absorption and reduce the risk of orthostatic hypotension. Patients must be euvolemic and clinically stable before initiation, and the dose is never escalated in a patient with worsening congestion.`,
		Context: `The slow up-titration exists because beta-blockade transiently depresses contractility before the long-term benefits of reverse remodeling appear; clinical trials waited two weeks or more between dose doublings. If a patient misses more than two weeks of therapy, re-titration from the starting dose is recommended because receptor upregulation during the gap makes the previous dose poorly tolerated. The extended-release capsule conversion is approximately: 3.125 mg twice daily to 10 mg daily, 6.25 mg twice daily to 20 mg daily, 12.5 mg twice daily to 40 mg daily, and 25 mg twice daily to 80 mg daily. Abrupt discontinuation must be avoided: taper over one to two weeks to prevent rebound tachycardia, hypertension, and ischemia.`,
	},
	{
		Number: 5,
		Title:  "Contraindications and Precautions",
		Body: `Carvedilol is contraindicated in severe bradycardia, second- or third-degree atrioventricular block or sick sinus syndrome without a pacemaker, cardiogenic shock, decompensated heart failure requiring intravenous inotropes, severe hepatic impairment, and bronchial asthma or related bronchospastic conditions. Important precautions include diabetes mellitus, because carvedilol can mask the adrenergic warning signs of hypoglycemia such as tremor and tachycardia; peripheral vascular disease; and pheochromocytoma, where alpha-blockade must be established first. Therapy should never be stopped abruptly in patients with coronary artery disease.`,
		Context: `The asthma contraindication follows directly from beta-2 blockade; in COPD without a reactive component, cardioselective agents are preferred but carvedilol is not absolutely contraindicated and is sometimes used cautiously. Masking of hypoglycemia matters most in insulin-treated diabetics; sweating remains intact because it is cholinergically mediated, and patients should be taught to rely on it. In pheochromocytoma, unopposed alpha stimulation can trigger hypertensive crisis if beta-blockade precedes alpha-blockade, although carvedilol's built-in alpha-1 blockade makes it theoretically less hazardous than pure beta-blockers. Abrupt withdrawal in ischemic heart disease has precipitated angina, infarction, and ventricular arrhythmias, which is the basis of the boxed guidance to taper.`,
	},
	{
		Number: 6,
		Title:  "Adverse Effects",
		Body: `The most common adverse effects of carvedilol are dizziness, fatigue, hypotension, and bradycardia, all extensions of its pharmacology. Orthostatic hypotension and syncope are most likely after the first dose and after each up-titration, which is why doses are taken with food and increases are spaced out. Other notable effects include weight gain and fluid retention early in heart failure therapy, worsening of hyperglycemia, diarrhea, and erectile dysfunction. Cold extremities and worsening claudication can occur in peripheral vascular disease. Most effects are dose-related and improve with time or dose adjustment.`,
		Context: `In the pivotal heart failure trials, dizziness occurred in roughly a third of patients and was the leading cause of early discontinuation, yet overall withdrawal rates were similar to placebo once titration was slowed. Transient worsening of heart failure during initiation is managed by diuretic adjustment rather than stopping the beta-blocker. Compared with metoprolol, carvedilol has a more favorable metabolic profile: it does not worsen insulin sensitivity and has a neutral or slightly favorable effect on lipids, attributed to the alpha-1 blockade. Rare effects include intraoperative floppy iris syndrome in cataract surgery and severe hypersensitivity reactions including Stevens-Johnson syndrome.`,
	},
	{
		Number: 7,
		Title:  "Interactions and Monitoring",
		Body: `Carvedilol is metabolized chiefly by CYP2D6 and CYP2C9, so strong CYP2D6 inhibitors such as fluoxetine, paroxetine, and quinidine raise its plasma levels and the risk of bradycardia and hypotension. It increases digoxin concentrations by about 15 percent, so digoxin levels should be checked after starting or adjusting carvedilol. Combination with non-dihydropyridine calcium channel blockers like verapamil or diltiazem risks additive atrioventricular block and requires ECG and blood pressure monitoring. Amiodarone and other CYP2C9 inhibitors can also potentiate its effects, and carvedilol can enhance the blood-glucose-lowering effect of insulin and oral hypoglycemics. Routine monitoring includes heart rate, blood pressure, weight, volume status, and glucose in diabetics.`,
		Context: `Poor CYP2D6 metabolizers have roughly two- to three-fold higher R(+)-carvedilol exposure and a higher rate of dizziness. Rifampin reduces carvedilol exposure by about 70 percent and can blunt its effect. Cimetidine modestly raises levels. Clonidine co-therapy needs a specific stop sequence: the beta-blocker is withdrawn first, then clonidine several days later, to avoid rebound hypertensive crisis. Reasonable monitoring practice is a resting heart rate above 55 beats per minute and systolic blood pressure above 90 to 100 mmHg before each up-titration, daily weights during initiation in heart failure, and periodic renal function because worsening cardiac output can reduce renal perfusion.`,
	},
}

var carvedilolQuestions = []QuizQuestion{
	{
		ID:    "q-mech-1",
		Slide: 2,
		Text:  "Which receptor profile best describes carvedilol?",
		Choices: []Choice{
			{ID: "a", Text: "Selective beta-1 blockade only"},
			{ID: "b", Text: "Non-selective beta blockade with alpha-1 blockade", Correct: true},
			{ID: "c", Text: "Alpha-2 agonism with beta-1 blockade"},
			{ID: "d", Text: "Selective alpha-1 blockade only"},
		},
	},
	{
		ID:    "q-mech-2",
		Slide: 2,
		Text:  "Which property of carvedilol is responsible for its afterload reduction?",
		Choices: []Choice{
			{ID: "a", Text: "Beta-1 receptor blockade"},
			{ID: "b", Text: "Beta-2 receptor blockade"},
			{ID: "c", Text: "Alpha-1 receptor blockade", Correct: true},
			{ID: "d", Text: "Calcium channel blockade"},
		},
	},
	{
		ID:    "q-mech-3",
		Slide: 2,
		Text:  "Which additional pharmacologic feature distinguishes carvedilol from most other beta-blockers?",
		Choices: []Choice{
			{ID: "a", Text: "Intrinsic sympathomimetic activity"},
			{ID: "b", Text: "Antioxidant free-radical scavenging activity", Correct: true},
			{ID: "c", Text: "Direct renin inhibition"},
			{ID: "d", Text: "Phosphodiesterase inhibition"},
		},
	},
	{
		ID:    "q-ind-1",
		Slide: 3,
		Text:  "Which of the following is an approved indication for carvedilol?",
		Choices: []Choice{
			{ID: "a", Text: "Acute decompensated heart failure requiring inotropes"},
			{ID: "b", Text: "Heart failure with reduced ejection fraction", Correct: true},
			{ID: "c", Text: "Paroxysmal supraventricular tachycardia"},
			{ID: "d", Text: "Pulmonary arterial hypertension"},
		},
	},
	{
		ID:    "q-ind-2",
		Slide: 3,
		Text:  "Alongside carvedilol, which beta-blockers have proven mortality benefit in heart failure with reduced ejection fraction?",
		Choices: []Choice{
			{ID: "a", Text: "Atenolol and propranolol"},
			{ID: "b", Text: "Metoprolol succinate and bisoprolol", Correct: true},
			{ID: "c", Text: "Labetalol and nadolol"},
			{ID: "d", Text: "Esmolol and sotalol"},
		},
	},
	{
		ID:    "q-dose-1",
		Slide: 4,
		Text:  "What is the recommended starting dose of carvedilol in chronic heart failure?",
		Choices: []Choice{
			{ID: "a", Text: "25 mg twice daily"},
			{ID: "b", Text: "12.5 mg twice daily"},
			{ID: "c", Text: "6.25 mg once daily"},
			{ID: "d", Text: "3.125 mg twice daily", Correct: true},
		},
	},
	{
		ID:    "q-dose-2",
		Slide: 4,
		Text:  "Why should carvedilol be taken with food?",
		Choices: []Choice{
			{ID: "a", Text: "To increase total absorption"},
			{ID: "b", Text: "To slow absorption and reduce orthostatic hypotension", Correct: true},
			{ID: "c", Text: "To prevent gastric ulceration"},
			{ID: "d", Text: "To avoid first-pass metabolism"},
		},
	},
	{
		ID:    "q-contra-1",
		Slide: 5,
		Text:  "Which condition is an absolute contraindication to carvedilol?",
		Choices: []Choice{
			{ID: "a", Text: "Bronchial asthma", Correct: true},
			{ID: "b", Text: "Stable COPD without bronchospasm"},
			{ID: "c", Text: "Compensated heart failure"},
			{ID: "d", Text: "Type 2 diabetes mellitus"},
		},
	},
	{
		ID:    "q-contra-2",
		Slide: 5,
		Text:  "In diabetic patients, carvedilol can mask which warning signs of hypoglycemia?",
		Choices: []Choice{
			{ID: "a", Text: "Sweating and hunger"},
			{ID: "b", Text: "Tremor and tachycardia", Correct: true},
			{ID: "c", Text: "Confusion and blurred vision"},
			{ID: "d", Text: "Headache and nausea"},
		},
	},
	{
		ID:    "q-contra-3",
		Slide: 5,
		Text:  "Why must carvedilol not be stopped abruptly in patients with coronary artery disease?",
		Choices: []Choice{
			{ID: "a", Text: "Risk of rebound tachycardia, hypertension, and ischemia", Correct: true},
			{ID: "b", Text: "Risk of hyperkalemia"},
			{ID: "c", Text: "Risk of drug accumulation"},
			{ID: "d", Text: "Risk of bronchospasm"},
		},
	},
	{
		ID:    "q-adv-1",
		Slide: 6,
		Text:  "What is the most common adverse effect leading to early discontinuation of carvedilol?",
		Choices: []Choice{
			{ID: "a", Text: "Cough"},
			{ID: "b", Text: "Dizziness", Correct: true},
			{ID: "c", Text: "Hyperkalemia"},
			{ID: "d", Text: "Angioedema"},
		},
	},
	{
		ID:    "q-adv-2",
		Slide: 6,
		Text:  "Compared with metoprolol, carvedilol's effect on insulin sensitivity is best described as:",
		Choices: []Choice{
			{ID: "a", Text: "Markedly worse"},
			{ID: "b", Text: "Identical"},
			{ID: "c", Text: "Neutral to slightly favorable", Correct: true},
			{ID: "d", Text: "Strongly insulin-sensitizing"},
		},
	},
	{
		ID:    "q-int-1",
		Slide: 7,
		Text:  "Which enzyme is chiefly responsible for carvedilol metabolism, making fluoxetine a significant interaction?",
		Choices: []Choice{
			{ID: "a", Text: "CYP3A4"},
			{ID: "b", Text: "CYP2D6", Correct: true},
			{ID: "c", Text: "CYP1A2"},
			{ID: "d", Text: "UGT1A1"},
		},
	},
	{
		ID:    "q-int-2",
		Slide: 7,
		Text:  "Starting carvedilol in a patient on digoxin is expected to:",
		Choices: []Choice{
			{ID: "a", Text: "Lower digoxin levels by half"},
			{ID: "b", Text: "Raise digoxin levels by about 15 percent", Correct: true},
			{ID: "c", Text: "Have no effect on digoxin levels"},
			{ID: "d", Text: "Double digoxin levels"},
		},
	},
}
